package batch

import (
	"context"
	"time"
)

// Chunks splits items into consecutive slices of at most size elements. The
// returned slices share the backing array of items.
func Chunks[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	var chunks [][]T
	for begin := 0; begin < len(items); begin += size {
		end := begin + size
		if end > len(items) {
			end = len(items)
		}

		chunks = append(chunks, items[begin:end])
	}

	return chunks
}

// ForEachChunk calls fn once per chunk, sequentially, sleeping delay between
// consecutive calls. The delay is a backpressure contract with rate-limited
// providers, so chunks are never issued concurrently.
//
// An error returned by fn stops the remaining chunks; callers that tolerate
// partial failure should handle the error inside fn and return nil.
// Cancelling ctx stops the loop with the context's error.
func ForEachChunk[T any](
	ctx context.Context,
	items []T,
	size int,
	delay time.Duration,
	fn func(ctx context.Context, chunk []T) error,
) error {
	for i, chunk := range Chunks(items, size) {
		if i > 0 && delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(ctx, chunk); err != nil {
			return err
		}
	}

	return nil
}
