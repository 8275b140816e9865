package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePages(t *testing.T) string {
	dir := t.TempDir()
	pages := map[string]string{
		"login.html":          "<h1>Login</h1>",
		"register.html":       "<h1>Register</h1>",
		"dashboard.html":      "<h1>Admin Dashboard</h1>",
		"user_dashboard.html": "<h1>Dashboard</h1>",
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestPageHandler_ServesPages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPageHandler(writePages(t)).RegisterPageRoutes(router)

	tests := []struct {
		path string
		want string
	}{
		{"/", "<h1>Login</h1>"},
		{"/login.html", "<h1>Login</h1>"},
		{"/register.html", "<h1>Register</h1>"},
		{"/dashboard.html", "<h1>Admin Dashboard</h1>"},
		{"/user_dashboard.html", "<h1>Dashboard</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
