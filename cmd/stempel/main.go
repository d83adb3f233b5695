package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/danielhaas/stempel/internal/cli"
	"github.com/danielhaas/stempel/internal/db"
	"github.com/danielhaas/stempel/internal/notify"
	"github.com/danielhaas/stempel/internal/report"
	"github.com/danielhaas/stempel/internal/repository"
	"github.com/danielhaas/stempel/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.stempel/stempel.db
	dbPath := os.Getenv("STEMPEL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".stempel", "stempel.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []timer.EventObserver
	if logTransitions, _ := strconv.ParseBool(os.Getenv("STEMPEL_LOG")); logTransitions {
		observers = append(observers, timer.NewLogObserver(os.Stderr))
	}
	notifyCfg := notify.LoadConfig()
	if notifyCfg.Enabled {
		notifier, err := notify.NewDBusNotifier(notifyCfg, os.Stderr)
		if err != nil {
			// No session bus is normal on headless machines; keep going.
			fmt.Fprintf(os.Stderr, "Warning: desktop notifications unavailable: %v\n", err)
		} else {
			defer notifier.Close()
			observers = append(observers, notifier)
		}
	}

	tm := timer.New(sessionRepo, timer.SystemClock{}, observers...)

	// Pick up a session left open by a previous process.
	if err := tm.Recover(context.Background()); err != nil {
		return fmt.Errorf("recovering active session: %w", err)
	}

	app := &cli.App{
		Timer:    tm,
		Sessions: sessionRepo,
		Reports:  report.NewService(sessionRepo),
		UoW:      uow,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
