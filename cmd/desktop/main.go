package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/desktop"
	"github.com/tomz197/bouncer/internal/leaderboard"
	"github.com/tomz197/bouncer/internal/loop/server"
	"github.com/tomz197/bouncer/internal/render"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "desktop",
		ReportTimestamp: true,
	})

	cfg, err := config.LoadGame(config.GetEnv("BOUNCER_CONFIG", ""))
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	srv, err := server.NewServer(cfg, server.Options{
		Username:  config.GetEnv("USER", "player"),
		Submitter: leaderboard.NewBoard(config.LeaderboardSize),
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("create session", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	if err := desktop.Run(srv, render.Title); err != nil {
		logger.Fatal("window closed with error", "err", err)
	}
}
