package leaderboard

// The snapshot lives under two stable keys: the serialized entries plus
// summary, and the epoch-millisecond timestamp of the computation.
const (
	redisKeySnapshot   = "scoresquare:leaderboard:snapshot"
	redisKeyComputedAt = "scoresquare:leaderboard:computed_at"
)
