// Package router provides submission module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/api/internal/config"
	regRepository "github.com/hackfest/api/internal/registration/repository"
	"github.com/hackfest/api/internal/submission/handler"
	"github.com/hackfest/api/internal/submission/repository"
	"github.com/hackfest/api/internal/submission/service"
)

// Deps holds the collaborators the submission routes are wired with.
type Deps struct {
	DB       *gorm.DB
	Logger   *zap.SugaredLogger
	Features config.FeatureConfig
	// Guard rate-limits the public endpoints that take credentials.
	Guard gin.HandlerFunc
	// Admin authenticates listing and code generation.
	Admin gin.HandlerFunc
}

// RegisterRoutes registers submission module routes.
func RegisterRoutes(r *gin.Engine, d Deps) {
	repo := repository.New(d.DB)
	regRepo := regRepository.New(d.DB)
	svc := service.New(repo, regRepo, d.Logger)
	h := handler.New(svc, d.Features, d.Logger)

	public := r.Group("/final-submissions")
	if d.Guard != nil {
		public.Use(d.Guard)
	}
	public.POST("/access", h.VerifyAccess)
	public.POST("", h.Submit)

	r.GET("/final-submissions", d.Admin, h.List)
	r.POST("/final-submissions/codes", d.Admin, h.GenerateCode)
}
