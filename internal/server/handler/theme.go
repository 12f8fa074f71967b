// Package handler provides the HTTP handlers of the theme preview server.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/content"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/palette"
	"github.com/sevigo/themeforge/internal/render"
)

// ThemeHandler serves the resolved theme. It holds no resolved state; every
// request loads the theme afresh.
type ThemeHandler struct {
	loader core.ThemeLoader
	logger *slog.Logger
}

// NewThemeHandler creates a handler backed by loader.
func NewThemeHandler(loader core.ThemeLoader, logger *slog.Logger) *ThemeHandler {
	return &ThemeHandler{
		loader: loader,
		logger: logger,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Index   *int   `json:"index,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

type paletteResponse struct {
	Scales   map[string]core.ColorScale `json:"scales"`
	Findings []palette.Finding          `json:"findings"`
}

// Config returns the whole resolved configuration as JSON.
func (h *ThemeHandler) Config(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.load(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, rc)
}

// Tokens returns one top-level token category, e.g. /api/v1/tokens/colors.
func (h *ThemeHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.load(w, r)
	if !ok {
		return
	}
	category := chi.URLParam(r, "category")
	v, found := rc.Token(category)
	if !found {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown token category " + category})
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

// Content lists the files each content pattern selects.
func (h *ThemeHandler) Content(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.load(w, r)
	if !ok {
		return
	}
	matches, err := content.Discover(r.Context(), h.loader.ProjectRoot(), rc.Content())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, matches)
}

// Palette reports the colour scales and any palette findings.
func (h *ThemeHandler) Palette(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.load(w, r)
	if !ok {
		return
	}
	theme := rc.Theme()
	findings := palette.Check(theme)
	if findings == nil {
		findings = []palette.Finding{}
	}
	h.writeJSON(w, http.StatusOK, paletteResponse{
		Scales:   palette.Scales(theme),
		Findings: findings,
	})
}

// Stylesheet renders the CSS variables and plugin rules.
func (h *ThemeHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.load(w, r)
	if !ok {
		return
	}
	css, err := render.Stylesheet(rc)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(css))
}

func (h *ThemeHandler) load(w http.ResponseWriter, r *http.Request) (*core.ResolvedConfig, bool) {
	rc, err := h.loader.Load(r.Context())
	if err != nil {
		h.fail(w, err)
		return nil, false
	}
	return rc, true
}

func (h *ThemeHandler) fail(w http.ResponseWriter, err error) {
	var patternErr *core.InvalidPatternError
	switch {
	case errors.As(err, &patternErr):
		h.logger.Warn("theme has an invalid content pattern", "index", patternErr.Index, "pattern", patternErr.Pattern)
		idx := patternErr.Index
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   err.Error(),
			Index:   &idx,
			Pattern: patternErr.Pattern,
		})
	case errors.Is(err, config.ErrConfigNotFound):
		h.logger.Warn("theme file not found", "error", err)
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("failed to serve theme", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func (h *ThemeHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
