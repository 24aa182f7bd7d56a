package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencegolf/internal/adapter/census"
	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres"
	"github.com/heartmarshall/sentencegolf/internal/adapter/postgres/frequency"
	"github.com/heartmarshall/sentencegolf/internal/adapter/redis"
	"github.com/heartmarshall/sentencegolf/internal/adapter/redis/propernoun"
	"github.com/heartmarshall/sentencegolf/internal/config"
	"github.com/heartmarshall/sentencegolf/internal/corpus"
	"github.com/heartmarshall/sentencegolf/internal/transport/rest"
)

// Run is the application entry point. It starts the HTTP server right away
// so probes can observe the corpus loading, loads the corpus in the
// background, and shuts down gracefully when ctx is canceled. A failed
// corpus load stops the server and is returned.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("corpus_source", cfg.Corpus.Source),
		slog.String("log_level", cfg.Log.Level),
	)

	pingers := make(map[string]rest.Pinger)

	provider, closeProvider, err := newProvider(ctx, cfg, logger, pingers)
	if err != nil {
		return err
	}
	defer closeProvider()

	var registry properNounRegistry
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		reg := propernoun.New(client, cfg.Redis.Key)
		registry = reg
		pingers["redis"] = reg
		logger.Info("proper noun registry enabled", slog.String("key", cfg.Redis.Key))
	}

	store := corpus.NewStore()
	handler, stopMiddleware := NewHTTPHandler(cfg, logger, store, registry, pingers)
	defer stopMiddleware()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		loadCtx, cancel := context.WithTimeout(gctx, cfg.Corpus.LoadTimeout)
		defer cancel()

		if err := store.Load(loadCtx, provider); err != nil {
			if gctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("load corpus: %w", err)
		}
		summary, _ := store.CensusSummary()
		logger.Info("corpus ready",
			slog.Int("bareword_count", summary.BarewordCount),
			slog.Int("lemma_count", summary.LemmaCount),
		)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped", slog.String("error", err.Error()))
		return err
	}
	logger.Info("application stopped")
	return nil
}

// newProvider selects the corpus source. Postgres registers a "database"
// pinger; the returned close func releases its pool.
func newProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger, pingers map[string]rest.Pinger) (corpus.Provider, func(), error) {
	if !cfg.Corpus.UsePostgres() {
		files := census.Files{
			Words:   cfg.Corpus.WordsFile,
			Lemmas:  cfg.Corpus.LemmasFile,
			Summary: cfg.Corpus.SummaryFile,
		}
		return census.NewFileProvider(cfg.Corpus.Dir, files, logger), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	pingers["database"] = pool
	return frequency.New(pool, logger), pool.Close, nil
}
