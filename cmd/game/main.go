package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/leaderboard"
	"github.com/tomz197/bouncer/internal/loop/client"
	"github.com/tomz197/bouncer/internal/loop/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bouncer"})
	if err := run(); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

// run plays one local session. The terminal is restored before it returns,
// so callers can log freely.
func run() error {
	cfg, err := config.LoadGame(config.GetEnv("BOUNCER_CONFIG", ""))
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, server.Options{
		Username:  config.GetEnv("USER", "player"),
		Submitter: leaderboard.NewBoard(config.LeaderboardSize),
	})
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	c := client.NewClient(srv, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{})
	return c.Run()
}
