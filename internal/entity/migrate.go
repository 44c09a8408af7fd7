package entity

import (
	"context"

	"github.com/fc-footy/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Team{},
		&TeamFollow{},
		&LeaderboardRefresh{},
	)
}
