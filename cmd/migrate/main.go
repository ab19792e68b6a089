package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pharmacy/config"
	logs "pharmacy/internal/infra/log"
	"pharmacy/internal/infra/persistence/migration"
	"pharmacy/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back migrations (-steps, default 1)
// - version: Print the current schema version

const startStopTimeout = 30 * time.Second

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var run func(*migration.Migrator) error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		run = func(mg *migration.Migrator) error { return mg.Up() }
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		run = func(mg *migration.Migrator) error { return mg.Down(*downSteps) }
	case "version":
		_ = versionCmd.Parse(os.Args[2:])
		run = printVersion
	default:
		printUsage()
		os.Exit(1)
	}

	if err := execute(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(run func(*migration.Migrator) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), startStopTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), startStopTimeout)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	mg, err := migration.New(db, logger)
	if err != nil {
		return err
	}

	return run(mg)
}

func printVersion(mg *migration.Migrator) error {
	version, dirty, err := mg.Version()
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}
	fmt.Printf("version=%d dirty=%t\n", version, dirty)

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                  Apply all pending migrations")
	fmt.Println("  down [-steps N]     Roll back N migrations (default 1)")
	fmt.Println("  version             Print the current schema version")
}
