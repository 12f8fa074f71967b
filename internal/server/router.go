package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(loader core.ThemeLoader, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	themeHandler := handler.NewThemeHandler(loader, logger)
	r.Get("/theme.css", themeHandler.Stylesheet)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/config", themeHandler.Config)
		r.Get("/tokens/{category}", themeHandler.Tokens)
		r.Get("/content", themeHandler.Content)
		r.Get("/palette", themeHandler.Palette)
	})

	return r
}
