package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fc-footy/backend/config"
	"github.com/fc-footy/backend/pkg/xcontext"
)

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "8080"),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "mysql"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "fcfooty"),
			Password: getEnv("MYSQL_PASSWORD", "fcfooty"),
			Database: getEnv("MYSQL_DATABASE", "fcfooty"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Subgraph: config.SubgraphConfigs{
			Endpoint:    getEnv("SUBGRAPH_ENDPOINT", ""),
			PageSize:    getIntEnv("SUBGRAPH_PAGE_SIZE", 1000),
			CallTimeout: getDurationEnv("SUBGRAPH_CALL_TIMEOUT", 30*time.Second),
		},
		Farcaster: config.FarcasterConfigs{
			Endpoint:    getEnv("FARCASTER_ENDPOINT", "https://api.neynar.com/v2/farcaster/user"),
			APIKey:      getEnv("FARCASTER_API_KEY", ""),
			ChunkSize:   getIntEnv("FARCASTER_CHUNK_SIZE", 100),
			ChunkDelay:  getDurationEnv("FARCASTER_CHUNK_DELAY", 100*time.Millisecond),
			CallTimeout: getDurationEnv("FARCASTER_CALL_TIMEOUT", 10*time.Second),
		},
		Leaderboard: config.LeaderboardConfigs{
			CacheTTL:          getDurationEnv("LEADERBOARD_CACHE_TTL", 24*time.Hour),
			RefreshInterval:   getDurationEnv("LEADERBOARD_REFRESH_INTERVAL", time.Hour),
			AdminFids:         getFidsEnv("LEADERBOARD_ADMIN_FIDS"),
			DisplayMultiplier: int64(getIntEnv("LEADERBOARD_DISPLAY_MULTIPLIER", 1000)),
		},
	}

	// A TOML file overrides the environment for any field it sets.
	if s.configPath != "" {
		if _, err := toml.DecodeFile(s.configPath, &cfg); err != nil {
			panic(err)
		}
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return def
}

func getIntEnv(key string, def int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return value
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}

	return value
}

func getFidsEnv(key string) []int64 {
	var fids []int64
	for _, field := range strings.Split(os.Getenv(key), ",") {
		fid, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			continue
		}

		fids = append(fids, fid)
	}

	return fids
}
