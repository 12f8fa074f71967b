package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/themeforge/internal/config"
	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/logger"
	"github.com/sevigo/themeforge/internal/plugins"
	"github.com/sevigo/themeforge/mocks"
)

func resolved(t *testing.T) *core.ResolvedConfig {
	t.Helper()
	forms, err := plugins.NewForms(nil)
	require.NoError(t, err)
	theme := core.Tokens{
		"colors": core.Group(core.Tokens{
			"maroon": core.Group(core.Tokens{"600": core.Scalar("#800000")}),
		}),
	}
	return core.NewResolvedConfig(core.Patterns("*.html"), theme, []core.Plugin{forms})
}

func serve(t *testing.T, loader core.ThemeLoader, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewRouter(loader, logger.Discard()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := serve(t, mocks.NewMockThemeLoader(ctrl), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Config(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockThemeLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(resolved(t), nil)

	rec := serve(t, loader, "/api/v1/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Content []string       `json:"content"`
		Theme   map[string]any `json:"theme"`
		Plugins []string       `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"*.html"}, body.Content)
	assert.Equal(t, []string{plugins.FormsName}, body.Plugins)
	assert.Contains(t, body.Theme, "colors")
}

func TestRouter_Tokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockThemeLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(resolved(t), nil).Times(2)

	rec := serve(t, loader, "/api/v1/tokens/colors")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"maroon":{"600":"#800000"}}`, rec.Body.String())

	rec = serve(t, loader, "/api/v1/tokens/spacing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Stylesheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockThemeLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(resolved(t), nil)

	rec := serve(t, loader, "/theme.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "--color-maroon-600: #800000;")
	assert.Contains(t, rec.Body.String(), "/* forms */")
}

func TestRouter_Content(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<p></p>"), 0o600))

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockThemeLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(resolved(t), nil)
	loader.EXPECT().ProjectRoot().Return(root)

	rec := serve(t, loader, "/api/v1/content")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"pattern":"*.html","files":["index.html"]}]`, rec.Body.String())
}

func TestRouter_Palette(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockThemeLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(resolved(t), nil)

	rec := serve(t, loader, "/api/v1/palette")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Findings []map[string]any `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Findings, 1)
	assert.Equal(t, "missing-weight", body.Findings[0]["kind"])
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid pattern",
			err:      fmt.Errorf("failed to resolve: %w", &core.InvalidPatternError{Index: 2, Pattern: "", Reason: "empty pattern"}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `"index":2`,
		},
		{
			name:     "missing theme file",
			err:      fmt.Errorf("%w: theme.config.yml", config.ErrConfigNotFound),
			wantCode: http.StatusNotFound,
			wantBody: "theme file not found",
		},
		{
			name:     "other",
			err:      plugins.ErrUnknownPlugin,
			wantCode: http.StatusInternalServerError,
			wantBody: "unknown plugin",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mocks.NewMockThemeLoader(ctrl)
			loader.EXPECT().Load(gomock.Any()).Return(nil, tt.err)

			rec := serve(t, loader, "/api/v1/config")
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody), rec.Body.String())
		})
	}
}
