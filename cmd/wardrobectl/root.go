// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/database"
	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// app holds the flags and the services opened for one invocation.
type app struct {
	configPath string
	dbPath     string
	driver     string
	output     string
	verbose    bool

	now func() time.Time

	db     *database.DB
	cfg    *config.Config
	ledger *ledger.Ledger
	engine *recommend.Engine
}

func newApp() *app {
	return &app{now: time.Now}
}

// execute runs the command tree and always releases the database.
func execute(ctx context.Context, a *app, args []string, stdout, stderr io.Writer) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardrobectl",
		Short: "Record worn outfits and get outfit recommendations",
		Long: `wardrobectl works directly on the wardrobe database.

Configuration is read the same way as the server: built-in defaults,
then config.yaml (or --config), then environment variables. --db and
--driver override the database settings.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a config.yaml file")
	flags.StringVar(&a.dbPath, "db", "", "Database file (overrides DB_PATH)")
	flags.StringVar(&a.driver, "driver", "", "Database driver: sqlite or duckdb (overrides DB_DRIVER)")
	flags.StringVarP(&a.output, "output", "o", outputTable, "Output format: table or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		a.wornCmd(),
		a.unwornCmd(),
		a.recommendCmd(),
		a.basicCmd(),
		a.historyCmd(),
	)
	return cmd
}

// open loads configuration and opens the database, ledger and engine.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	if a.output != outputTable && a.output != outputJSON {
		return fmt.Errorf("unknown output format %q (want table or json)", a.output)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := newLogger(cmd.ErrOrStderr(), a.verbose)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.db = db

	engineCfg, err := recommend.ConfigFromApp(&cfg.Recommend)
	if err != nil {
		return fmt.Errorf("invalid recommend config: %w", err)
	}
	// One-shot process: nothing to reuse.
	engineCfg.Cache.Enabled = false

	a.engine, err = recommend.NewEngine(db, engineCfg, logger, recommend.WithClock(a.now))
	if err != nil {
		return err
	}
	a.ledger = ledger.New(db, logger, ledger.WithNow(a.now), ledger.WithCacheInvalidator(a.engine))
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.driver != "" {
		if a.driver != config.DriverSQLite && a.driver != config.DriverDuckDB {
			return nil, fmt.Errorf("unknown driver %q (want sqlite or duckdb)", a.driver)
		}
		cfg.Database.Driver = a.driver
	}
	return cfg, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// today returns the current date in the configured zone.
func (a *app) today() models.Date {
	loc := time.Local
	if cfg := a.engine.Config(); cfg != nil && cfg.Location != nil {
		loc = cfg.Location
	}
	return models.DateOf(a.now().In(loc))
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
