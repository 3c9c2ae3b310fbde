package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rakhmonovquvonchbek/taskemon/internal/catalog"
	"github.com/rakhmonovquvonchbek/taskemon/internal/config"
	"github.com/rakhmonovquvonchbek/taskemon/internal/httpmw"
	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
	"github.com/rakhmonovquvonchbek/taskemon/internal/server"
	"github.com/rakhmonovquvonchbek/taskemon/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Store  *progression.Store
	Events telemetry.Repository
	Logger *slog.Logger
}

// NewStore builds a store wired to events and seeded from the configured catalog,
// or the built-in one when no catalog path is set.
func NewStore(ctx context.Context, cfg *config.Config, events progression.EventRecorder, logger *slog.Logger) (*progression.Store, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	cat := catalog.Default()
	if path := cfg.Progression.CatalogPath; path != "" {
		c, err := catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = c
		logger.InfoContext(ctx, "catalog loaded", "path", path, "quests", len(c.Quests), "achievements", len(c.Achievements))
	}

	opts := []progression.Option{
		progression.WithUnlockLedger(progression.LedgerFor(cfg.Progression.UnlockMode)),
		progression.WithLogger(logger),
	}
	if events != nil {
		opts = append(opts, progression.WithRecorder(events))
	}
	store := progression.NewStore(opts...)
	if err := cat.Seed(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Events == nil {
		opts.Events = telemetry.NewMemoryRepository()
	}
	if opts.Store == nil {
		store, err := NewStore(context.Background(), opts.Config, opts.Events, opts.Logger)
		if err != nil {
			return nil, err
		}
		opts.Store = store
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskemon",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, &server.API{
		Store:  opts.Store,
		Events: opts.Events,
		Logger: opts.Logger,
	})

	return httpmw.Chain(
		mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	), nil
}

// Run serves handler on cfg.Server.Addr until ctx is cancelled, then shuts down
// within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, cfg.Server.ShutdownTimeout, handler, logger)
}

func Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.InfoContext(ctx, "server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.InfoContext(ctx, "shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "graceful shutdown failed", "err", err)
			return srv.Close()
		}
		logger.InfoContext(ctx, "server shutdown complete")
		return nil
	})
	return eg.Wait()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
