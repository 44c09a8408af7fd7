package config

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

type Configs struct {
	Env string

	Database    DatabaseConfigs
	ApiServer   ServerConfigs
	Redis       RedisConfigs
	Subgraph    SubgraphConfigs
	Farcaster   FarcasterConfigs
	Leaderboard LeaderboardConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

type RedisConfigs struct {
	Addr string
}

// SubgraphConfigs points at the ScoreSquare subgraph indexer.
type SubgraphConfigs struct {
	Endpoint    string
	PageSize    int
	CallTimeout time.Duration
}

// FarcasterConfigs configures the bulk address-to-profile lookup. ChunkSize
// and ChunkDelay are the provider's rate-limit contract, not tunables for
// throughput.
type FarcasterConfigs struct {
	Endpoint    string
	APIKey      string
	ChunkSize   int
	ChunkDelay  time.Duration
	CallTimeout time.Duration
}

type LeaderboardConfigs struct {
	// CacheTTL bounds how long a computed snapshot is served without a
	// recompute. Default is 24h.
	CacheTTL time.Duration

	// RefreshInterval is the cadence of the cron refresh job.
	RefreshInterval time.Duration

	// AdminFids is the fixed allow-list of fids permitted to force a cache
	// invalidation.
	AdminFids []int64

	// DisplayMultiplier rescales points for UI readability only. Ranking is
	// always computed on the unscaled value.
	DisplayMultiplier int64
}

func (c LeaderboardConfigs) IsAdmin(fid int64) bool {
	return slices.Contains(c.AdminFids, fid)
}
