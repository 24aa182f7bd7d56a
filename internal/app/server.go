package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sentencegolf/internal/config"
	"github.com/heartmarshall/sentencegolf/internal/corpus"
	"github.com/heartmarshall/sentencegolf/internal/service/scoring"
	"github.com/heartmarshall/sentencegolf/internal/transport/middleware"
	"github.com/heartmarshall/sentencegolf/internal/transport/rest"
)

// properNounRegistry is the registry contract accepted by the scoring service.
type properNounRegistry interface {
	Add(ctx context.Context, word string) (bool, error)
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// NewHTTPHandler assembles the scoring API over store. registry may be nil.
// The returned stop function releases background middleware resources.
func NewHTTPHandler(
	cfg *config.Config,
	logger *slog.Logger,
	store *corpus.Store,
	registry properNounRegistry,
	pingers map[string]rest.Pinger,
) (http.Handler, func()) {
	svc := scoring.NewService(logger, store, registry, cfg.Scoring)

	router := rest.NewRouter(
		rest.NewHealthHandler(store, BuildVersion(), pingers),
		rest.NewScoreHandler(svc, logger),
	)

	var rateLimit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		rateLimit = rl.Limit(cfg.RateLimit.RequestsPerMin)
		stop = rl.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)
	return chain(router), stop
}
