package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fc-footy/backend/internal/middleware"
	"github.com/fc-footy/backend/pkg/router"
	"github.com/fc-footy/backend/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = context.Background()
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedisClient()
	s.loadClients()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	// The mini app calls from the browser, so every endpoint is served behind
	// a permissive CORS layer.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Farcaster-Fid"},
	}).Handler(s.router.Handler())

	cfg := xcontext.Configs(s.ctx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ApiServer.Port),
		Handler: corsHandler,
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on port %s", cfg.ApiServer.Port)
	if err := httpServer.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.ImportFid())

	// Leaderboard API
	router.GET(s.router, "/getLeaderboard", s.leaderboardDomain.GetLeaderboard)
	router.POST(s.router, "/refreshLeaderboard", s.leaderboardDomain.RefreshLeaderboard)
	router.POST(s.router, "/invalidateLeaderboard", s.leaderboardDomain.InvalidateLeaderboard)

	// Team API
	router.GET(s.router, "/getTeams", s.teamDomain.GetTeams)
	router.GET(s.router, "/getFollowedTeams", s.teamDomain.GetFollowedTeams)
	router.POST(s.router, "/followTeam", s.teamDomain.FollowTeam)
	router.POST(s.router, "/unfollowTeam", s.teamDomain.UnfollowTeam)
}
