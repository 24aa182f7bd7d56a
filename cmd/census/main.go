// Command census builds the word and lemma frequency census from British
// National Corpus XML texts. It is run offline, not as part of the server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (extract,files,database; default: all)
//	--dry-run        parse texts without writing files or rows
//	--census-config  path to census YAML config file
//	--migrate        apply database migrations before the database phase
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres"
	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres/frequency"
	"github.com/heartmarshall/sentencegolf/internal/app"
	"github.com/heartmarshall/sentencegolf/internal/app/census"
	"github.com/heartmarshall/sentencegolf/internal/config"
)

// Compile-time interface assertions.
var (
	_ census.CensusRepo = (*frequency.Repo)(nil)
	_ census.TxRunner   = (*postgres.TxManager)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse texts without writing files or rows")
	censusConfigFlag := flag.String("census-config", "", "path to census YAML config file")
	migrateFlag := flag.Bool("migrate", false, "apply database migrations before the database phase")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	censusCfg, err := census.LoadConfig(*censusConfigFlag)
	if err != nil {
		logger.Error("load census config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		censusCfg.DryRun = true
	}

	var requested []string
	if *phaseFlag != "" {
		requested = strings.Split(*phaseFlag, ",")
	}
	phases, err := census.SelectPhases(requested)
	if err != nil {
		logger.Error("invalid --phase", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	var (
		repo census.CensusRepo
		txm  census.TxRunner
	)
	if slices.Contains(phases, census.PhaseDatabase) && !censusCfg.DryRun {
		if appCfg.Database.DSN == "" {
			logger.Error("database phase requires database.dsn")
			os.Exit(1)
		}

		if *migrateFlag {
			applied, err := postgres.Migrate(ctx, appCfg.Database.DSN)
			if err != nil {
				logger.Error("apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("migrations applied", slog.Int("count", applied))
		}

		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = frequency.New(pool, logger)
		txm = postgres.NewTxManager(pool)
	}

	pipeline := census.NewPipeline(logger, repo, txm, *censusCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
