package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/fusionkit/torus/pkg/cache"
	apperrors "github.com/fusionkit/torus/pkg/errors"
	"github.com/fusionkit/torus/pkg/params"
)

// serveCommand creates the serve command: expose the build calculators over
// HTTP for design-scan tooling.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the build calculators over HTTP",
		Long: `Serve the build calculators over HTTP.

Endpoints:

  GET  /healthz      liveness probe
  GET  /v1/defaults  the built-in reference parameter set (JSON)
  POST /v1/build     evaluate a parameter set (TOML body) and return the
                     machine record (JSON)

Evaluation results are cached on disk keyed by the full parameter set, so
repeated scans over the same design points are served without recomputing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the record cache")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "share the record cache via this Redis address instead of the local disk")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, redisAddr string) error {
	var (
		store cache.Cache
		err   error
	)
	switch {
	case redisAddr != "":
		store, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	default:
		store, err = newCache(noCache)
	}
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/defaults", c.handleDefaults)
	r.Post("/v1/build", c.handleBuild(store))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	c.Logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleDefaults returns the reference baseline parameter set.
func (c *CLI) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(params.Defaults()); err != nil {
		c.Logger.Error("encode defaults", "err", err)
	}
}

// handleBuild evaluates a TOML parameter set posted in the request body and
// returns the machine record as JSON.
func (c *CLI) handleBuild(store cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := readBody(req, 1<<20)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		m, err := params.Parse(body)
		if err != nil {
			httpError(w, http.StatusUnprocessableEntity, err)
			return
		}

		// The key covers every input field, so it must be taken before
		// the solvers mutate the record.
		key := cache.RecordKey(m)
		if data, hit, err := store.Get(req.Context(), key); err == nil && hit {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write(data)
			return
		}

		rec, _ := evaluate(req.Context(), c, m, false)
		data, err := json.Marshal(rec)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		_ = store.Set(req.Context(), key, data, 24*time.Hour)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "miss")
		_, _ = w.Write(data)
	}
}

func readBody(req *http.Request, limit int64) ([]byte, error) {
	defer req.Body.Close()
	data, err := io.ReadAll(io.LimitReader(req.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func httpError(w http.ResponseWriter, status int, err error) {
	body := map[string]string{"error": apperrors.UserMessage(err)}
	if code := apperrors.GetCode(err); code != "" {
		body["code"] = string(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
