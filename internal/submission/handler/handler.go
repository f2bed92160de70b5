// Package handler provides HTTP handlers for the final-submission gate.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/api/internal/config"
	"github.com/hackfest/api/internal/metrics"
	"github.com/hackfest/api/internal/submission/model"
	"github.com/hackfest/api/internal/submission/service"
)

// Handler handles HTTP requests for submission endpoints.
type Handler struct {
	service  service.Service
	features config.FeatureConfig
	logger   *zap.SugaredLogger
}

// New creates a new submission handler instance.
func New(svc service.Service, features config.FeatureConfig, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, features: features, logger: logger}
}

// accessError maps verification failures onto the error envelope. Returns
// false when the error was not an access failure.
func (h *Handler) accessError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, model.ErrRegistrationNotFound):
		errorResponse(c, "NOT_FOUND", "no registration found for this lead email", http.StatusNotFound)
	case errors.Is(err, model.ErrCodeNotAssigned):
		errorResponse(c, "CODE_NOT_ASSIGNED", "no access code has been issued for this team", http.StatusUnauthorized)
	case errors.Is(err, model.ErrCodeInvalid):
		errorResponse(c, "CODE_INVALID", "access code is incorrect", http.StatusUnauthorized)
	default:
		return false
	}
	return true
}

// VerifyAccess handles POST /final-submissions/access.
func (h *Handler) VerifyAccess(c *gin.Context) {
	var req model.AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.VerifyAccess(c.Request.Context(), &req)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			errorResponse(c, "VALIDATION", ve.Reason, http.StatusBadRequest)
			return
		}
		if h.accessError(c, err) {
			return
		}
		h.logger.Errorw("error verifying submission access", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.AccessResponse{
		OK:             true,
		TeamName:       result.Registration.TeamName,
		LeadEmail:      result.Registration.LeadEmail,
		AccessCodeHash: result.Hash,
	})
}

// Submit handles POST /final-submissions.
func (h *Handler) Submit(c *gin.Context) {
	if !h.features.SubmissionsOpen {
		errorResponse(c, "CLOSED", "submissions are closed", http.StatusForbidden)
		return
	}

	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			errorResponse(c, "VALIDATION", ve.Reason, http.StatusBadRequest)
			return
		}
		if h.accessError(c, err) {
			return
		}
		h.logger.Errorw("error storing submission", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.Submissions.Inc()
	h.logger.Infow("submission accepted",
		"team_name", sub.TeamName,
		"project_name", sub.ProjectName,
	)
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// List handles GET /final-submissions. Admin only.
func (h *Handler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing submissions", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]model.SubmissionItem, 0, len(subs))
	for i := range subs {
		items = append(items, model.ToItem(&subs[i]))
	}
	c.JSON(http.StatusOK, model.ListResponse{Items: items})
}

// GenerateCode handles POST /final-submissions/codes. Admin only.
func (h *Handler) GenerateCode(c *gin.Context) {
	var req model.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GenerateCode(c.Request.Context(), req.LeadEmail)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			errorResponse(c, "VALIDATION", ve.Reason, http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrRegistrationNotFound) {
			errorResponse(c, "NOT_FOUND", "no registration found for this lead email", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error generating access code", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
