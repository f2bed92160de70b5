// Package router provides registration module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/api/internal/config"
	"github.com/hackfest/api/internal/notify"
	"github.com/hackfest/api/internal/registration/handler"
	"github.com/hackfest/api/internal/registration/repository"
	"github.com/hackfest/api/internal/registration/service"
)

// Deps holds the collaborators the registration routes are wired with.
type Deps struct {
	DB       *gorm.DB
	Logger   *zap.SugaredLogger
	Notifier notify.Notifier
	Features config.FeatureConfig
	// Guard rate-limits the public write endpoint.
	Guard gin.HandlerFunc
	// BotGate optionally rejects suspected bots before validation.
	BotGate gin.HandlerFunc
	// Admin authenticates the listing endpoint.
	Admin gin.HandlerFunc
}

// RegisterRoutes registers registration module routes.
func RegisterRoutes(r *gin.Engine, d Deps) {
	repo := repository.New(d.DB)
	svc := service.New(repo, d.Notifier, d.Logger)
	h := handler.New(svc, d.Features, d.Logger)

	write := r.Group("/")
	if d.Guard != nil {
		write.Use(d.Guard)
	}
	if d.BotGate != nil {
		write.Use(d.BotGate)
	}
	write.POST("/registrations", h.Register)
	// Legacy path kept for the original registration form client.
	write.POST("/submit", h.Register)

	r.GET("/registrations", d.Admin, h.List)
}
