package testutil

import (
	"context"
	"time"

	"github.com/fc-footy/backend/config"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/pkg/logger"
	"github.com/fc-footy/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		Subgraph: config.SubgraphConfigs{
			PageSize: 1000,
		},
		Farcaster: config.FarcasterConfigs{
			ChunkSize: 100,
		},
		Leaderboard: config.LeaderboardConfigs{
			CacheTTL:          24 * time.Hour,
			AdminFids:         []int64{4163},
			DisplayMultiplier: 20,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithFid(fid int64) context.Context {
	return xcontext.WithRequestFid(MockContext(), fid)
}
