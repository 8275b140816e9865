package handler

import (
	"errors"
	"log"
	"net/http"

	"auth_portal/internal/model"
	"auth_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	// Missing or unparseable credentials get the same response as a failed
	// lookup, so malformed requests leak nothing either.
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Printf("Error logging in user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in user"})
		return
	}

	redirectURL := "/user_dashboard.html"
	if user.Role == model.RoleAdmin {
		redirectURL = "/dashboard.html"
	}

	c.JSON(http.StatusOK, gin.H{
		"role":        user.Role,
		"redirectUrl": redirectURL,
		"username":    user.Username,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username        string `json:"username" form:"username"`
		Email           string `json:"email" form:"email"`
		Phone           string `json:"phone" form:"phone"`
		Password        string `json:"password" form:"password"`
		ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
		Role            string `json:"role" form:"role"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}

	_, err := h.service.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteProfile):
			c.String(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrPasswordMismatch):
			c.String(http.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, service.ErrDuplicateEmail):
			c.String(http.StatusBadRequest, "Email already exists")
		case errors.Is(err, service.ErrDuplicatePhone):
			c.String(http.StatusBadRequest, "Phone number already exists")
		case errors.Is(err, service.ErrDuplicateUsername):
			c.String(http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("Error registering user: %v", err)
			c.String(http.StatusInternalServerError, "Error registering user")
		}
		return
	}

	c.Redirect(http.StatusFound, "/login.html")
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r gin.IRoutes) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
}
