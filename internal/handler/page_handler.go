package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static HTML documents
type PageHandler struct {
	publicDir string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

func (h *PageHandler) servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(h.publicDir, name))
	}
}

// RegisterPageRoutes registers the static page routes
func (h *PageHandler) RegisterPageRoutes(r gin.IRoutes) {
	r.GET("/", h.servePage("login.html"))
	r.GET("/login.html", h.servePage("login.html"))
	r.GET("/register.html", h.servePage("register.html"))
	r.GET("/dashboard.html", h.servePage("dashboard.html"))
	r.GET("/user_dashboard.html", h.servePage("user_dashboard.html"))
}
