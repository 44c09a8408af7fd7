package main

import (
	"context"

	"github.com/fc-footy/backend/internal/client"
	"github.com/fc-footy/backend/internal/domain"
	"github.com/fc-footy/backend/internal/domain/leaderboard"
	"github.com/fc-footy/backend/internal/entity"
	"github.com/fc-footy/backend/internal/repository"
	"github.com/fc-footy/backend/pkg/logger"
	"github.com/fc-footy/backend/pkg/router"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/fc-footy/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configPath string

	redisClient xredis.Client

	gameLedger       client.GameLedger
	identityResolver client.IdentityResolver
	snapshotCache    leaderboard.SnapshotCache

	teamRepo    repository.TeamRepository
	followRepo  repository.TeamFollowRepository
	refreshRepo repository.LeaderboardRefreshRepository

	leaderboardDomain domain.LeaderboardDomain
	teamDomain        domain.TeamDomain

	router *router.Router
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "fcfooty"
	app.Usage = "FC Footy backend services"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path of an optional TOML config file overriding the environment",
			Destination: &s.configPath,
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves the leaderboard and team endpoints.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start the cron worker",
			Category:    "Worker",
			Description: `Recomputes the ScoreSquare leaderboard on an interval.`,
		},
		{
			Action:   s.startReport,
			Name:     "report",
			Usage:    "Run the leaderboard pipeline once and write a report",
			Category: "Batch",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "fixture",
					Usage: "Use the deterministic fixture ledger instead of the subgraph (dev only)",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "Directory of the JSON report artifact",
					Value: ".",
				},
			},
			Description: `Fetches the ledger, resolves identities, prints the ranked
leaderboard and writes a timestamped JSON artifact.`,
		},
	}

	s.app = app
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	databaseConfigs := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.Open(databaseConfigs.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)

	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadClients() {
	cfg := xcontext.Configs(s.ctx)
	s.gameLedger = client.NewGameLedger(cfg.Subgraph)
	s.identityResolver = client.NewIdentityResolver(cfg.Farcaster)
}

func (s *srv) loadRepos() {
	s.teamRepo = repository.NewTeamRepository()
	s.followRepo = repository.NewTeamFollowRepository()
	s.refreshRepo = repository.NewLeaderboardRefreshRepository()
}

func (s *srv) loadDomains() {
	s.snapshotCache = leaderboard.NewSnapshotCache(
		s.redisClient, xcontext.Configs(s.ctx).Leaderboard.CacheTTL)

	s.leaderboardDomain = domain.NewLeaderboardDomain(
		s.gameLedger, s.identityResolver, s.snapshotCache, s.refreshRepo)
	s.teamDomain = domain.NewTeamDomain(s.teamRepo, s.followRepo)
}
