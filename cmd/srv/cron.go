package main

import (
	"context"

	"github.com/fc-footy/backend/internal/domain/cron"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.ctx = context.Background()
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedisClient()
	s.loadClients()
	s.loadRepos()
	s.loadDomains()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewRefreshLeaderboardCronJob(
		s.leaderboardDomain, xcontext.Configs(s.ctx).Leaderboard.RefreshInterval))
	cronJobManager.Start(s.ctx)

	return nil
}
