package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

type MockRedisClient struct {
	ExistFunc  func(ctx context.Context, key string) (bool, error)
	DelFunc    func(ctx context.Context, key ...string) error
	SetFunc    func(ctx context.Context, key, value string) error
	SetObjFunc func(ctx context.Context, key string, obj any, ttl time.Duration) error
	MSetFunc   func(ctx context.Context, kv map[string]any) error
	GetFunc    func(ctx context.Context, key string) (string, error)
	GetObjFunc func(ctx context.Context, key string, v any) error
	MGetFunc   func(ctx context.Context, keys ...string) ([]any, error)
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	return false, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	return nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	return nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	return nil
}

func (m *MockRedisClient) MSet(ctx context.Context, kv map[string]any) error {
	if m.MSetFunc != nil {
		return m.MSetFunc(ctx, kv)
	}

	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	return "", errors.New("not found")
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	return errors.New("not found")
}

func (m *MockRedisClient) MGet(ctx context.Context, keys ...string) ([]any, error) {
	if m.MGetFunc != nil {
		return m.MGetFunc(ctx, keys...)
	}

	return nil, nil
}

// NewInMemoryRedisClient backs the mock with a plain map, which is enough for
// cache round-trip tests.
func NewInMemoryRedisClient() *MockRedisClient {
	var mutex sync.Mutex
	store := make(map[string]string)

	return &MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			mutex.Lock()
			defer mutex.Unlock()
			_, ok := store[key]
			return ok, nil
		},
		DelFunc: func(ctx context.Context, key ...string) error {
			mutex.Lock()
			defer mutex.Unlock()
			for _, k := range key {
				delete(store, k)
			}
			return nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			mutex.Lock()
			defer mutex.Unlock()
			store[key] = value
			return nil
		},
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			b, err := json.Marshal(obj)
			if err != nil {
				return err
			}

			mutex.Lock()
			defer mutex.Unlock()
			store[key] = string(b)
			return nil
		},
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mutex.Lock()
			defer mutex.Unlock()
			value, ok := store[key]
			if !ok {
				return "", errors.New("not found")
			}
			return value, nil
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			mutex.Lock()
			defer mutex.Unlock()
			value, ok := store[key]
			if !ok {
				return errors.New("not found")
			}
			return json.Unmarshal([]byte(value), v)
		},
	}
}
