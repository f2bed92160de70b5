// Package repository provides data access for team registrations.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hackfest/api/internal/registration/model"
)

const (
	// DefaultListLimit is the listing window when the caller supplies none.
	DefaultListLimit = 100
	// MaxListLimit bounds response size and query cost.
	MaxListLimit = 500
)

// Repository defines data access operations for team registrations.
type Repository interface {
	// Create appends one registration. A lead email conflict yields
	// model.ErrDuplicateRegistration.
	Create(ctx context.Context, reg *model.TeamRegistration) error

	// List returns registrations newest-first, honoring a clamped limit.
	List(ctx context.Context, limit int) ([]model.TeamRegistration, error)

	// FindByLeadEmail looks up a registration by normalized lead email.
	FindByLeadEmail(ctx context.Context, email string) (*model.TeamRegistration, error)
}

// ErrNotFound indicates that no registration matches the lookup.
var ErrNotFound = errors.New("registration not found")

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create appends one registration with server-assigned id and timestamp.
func (r *repository) Create(ctx context.Context, reg *model.TeamRegistration) error {
	reg.ID = uuid.NewString()
	reg.CreatedAt = time.Now()
	for i := range reg.Members {
		reg.Members[i].ID = uuid.NewString()
		reg.Members[i].RegistrationID = reg.ID
	}

	err := r.db.WithContext(ctx).Create(reg).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique key violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// List returns registrations newest-first with members preloaded.
func (r *repository) List(ctx context.Context, limit int) ([]model.TeamRegistration, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var regs []model.TeamRegistration
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("slot ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	if regs == nil {
		regs = []model.TeamRegistration{}
	}
	return regs, nil
}

// FindByLeadEmail performs an equality lookup on the normalized lead email.
func (r *repository) FindByLeadEmail(ctx context.Context, email string) (*model.TeamRegistration, error) {
	var reg model.TeamRegistration
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("slot ASC")
		}).
		Where("lead_email = ?", model.NormalizeEmail(email)).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}
