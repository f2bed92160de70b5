package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/api/internal/config"
)

// LoginRequest carries the admin credentials for cookie-based login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler handles admin login and logout.
type Handler struct {
	cfg      config.AdminConfig
	sessions *Sessions
	logger   *zap.SugaredLogger
}

// NewHandler creates a new auth handler instance.
func NewHandler(cfg config.AdminConfig, sessions *Sessions, logger *zap.SugaredLogger) *Handler {
	return &Handler{cfg: cfg, sessions: sessions, logger: logger}
}

// Login handles POST /auth/login. On success it sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		unauthorized(c)
		return
	}

	if !credentialsMatch(h.cfg, req.Username, req.Password) {
		h.logger.Warnw("admin login rejected", "username", req.Username)
		unauthorized(c)
		return
	}

	token, err := h.sessions.Issue(req.Username)
	if err != nil {
		h.logger.Errorw("error issuing session token", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "internal server error",
		}})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.CookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
}
