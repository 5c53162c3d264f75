package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"dealrisk-mcp/internal/service"
)

// WebAPI is the HTTP surface over the analysis service.
type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

func NewWebAPI(logger zerolog.Logger, svc *service.Service, config Config) *WebAPI {
	handler := NewHandler(svc)

	router := chi.NewRouter()

	router.Use(RequestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", handler.ListTemplates)
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/tornado", handler.Tornado)
			r.Post("/matrix", handler.Matrix)
			r.Post("/montecarlo", handler.MonteCarlo)
			r.Post("/scenarios", handler.CompareScenarios)
			r.Post("/breakeven", handler.BreakEven)
		})
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the mux so tests can exercise routes without a listener.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start serves until the listener fails or the process gets SIGINT/SIGTERM,
// then drains in-flight requests.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
