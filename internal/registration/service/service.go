// Package service provides business logic for team registration.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hackfest/api/internal/notify"
	"github.com/hackfest/api/internal/registration/model"
	"github.com/hackfest/api/internal/registration/repository"
)

// notifyTimeout bounds the fire-and-forget notification send.
const notifyTimeout = 30 * time.Second

// Service defines business logic operations for team registration.
type Service interface {
	// Register validates, normalizes, and stores a registration payload.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.TeamRegistration, error)

	// List returns stored registrations newest-first.
	List(ctx context.Context, limit int) ([]model.TeamRegistration, error)
}

type service struct {
	repo     repository.Repository
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(repo repository.Repository, notifier notify.Notifier, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Register validates and stores a registration, then kicks off a
// best-effort notification that never affects the result.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.TeamRegistration, error) {
	reg, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	// Detached from the request context: the response is already decided.
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyRegistration(notifyCtx, reg); err != nil {
			s.logger.Warnw("registration notification failed",
				"team_name", reg.TeamName,
				"lead_email", reg.LeadEmail,
				"error", err,
			)
		}
	}()

	return reg, nil
}

// List returns stored registrations newest-first.
func (s *service) List(ctx context.Context, limit int) ([]model.TeamRegistration, error) {
	return s.repo.List(ctx, limit)
}
