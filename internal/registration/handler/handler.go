// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/api/internal/config"
	"github.com/hackfest/api/internal/metrics"
	regModel "github.com/hackfest/api/internal/registration/model"
	"github.com/hackfest/api/internal/registration/service"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service  service.Service
	features config.FeatureConfig
	logger   *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, features config.FeatureConfig, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, features: features, logger: logger}
}

// Register handles POST /registrations.
func (h *Handler) Register(c *gin.Context) {
	if !h.features.RegistrationOpen {
		errorResponse(c, "CLOSED", "registration is closed", http.StatusForbidden)
		return
	}

	var req regModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	reg, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if ve, ok := regModel.AsValidationError(err); ok {
			errorResponse(c, "VALIDATION", ve.Reason, http.StatusBadRequest)
			return
		}
		if errors.Is(err, regModel.ErrDuplicateRegistration) {
			errorResponse(c, "DUPLICATE_REGISTRATION", "this lead email is already registered", http.StatusConflict)
			return
		}
		h.logger.Errorw("error storing registration", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.Registrations.Inc()
	h.logger.Infow("registration accepted",
		"team_name", reg.TeamName,
		"lead_email", reg.LeadEmail,
		"team_size", reg.TeamSize,
	)
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// List handles GET /registrations. Admin only.
func (h *Handler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorResponse(c, "INVALID_REQUEST", "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	regs, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("error listing registrations", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]regModel.RegistrationItem, 0, len(regs))
	for i := range regs {
		items = append(items, regModel.ToItem(&regs[i]))
	}
	c.JSON(http.StatusOK, regModel.ListResponse{Items: items})
}
