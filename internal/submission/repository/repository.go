// Package repository provides data access for final submissions and
// the access-code registry.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hackfest/api/internal/submission/model"
)

// ErrAccessKeyNotFound indicates no access key exists for the lead email.
var ErrAccessKeyNotFound = errors.New("access key not found")

// Repository defines data access operations for submissions and access keys.
type Repository interface {
	// CreateSubmission appends one final submission.
	CreateSubmission(ctx context.Context, sub *model.FinalSubmission) error

	// ListSubmissions returns submissions newest-first.
	ListSubmissions(ctx context.Context) ([]model.FinalSubmission, error)

	// GetAccessKey looks up the access key for a normalized lead email.
	GetAccessKey(ctx context.Context, leadEmail string) (*model.SubmissionAccessKey, error)

	// UpsertAccessKey stores or replaces the access key for a lead email.
	UpsertAccessKey(ctx context.Context, key *model.SubmissionAccessKey) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new submission repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateSubmission appends one submission with server-assigned id and timestamp.
func (r *repository) CreateSubmission(ctx context.Context, sub *model.FinalSubmission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(sub).Error
}

// ListSubmissions returns submissions newest-first.
func (r *repository) ListSubmissions(ctx context.Context) ([]model.FinalSubmission, error) {
	var subs []model.FinalSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []model.FinalSubmission{}
	}
	return subs, nil
}

// GetAccessKey performs an equality lookup on the normalized lead email.
func (r *repository) GetAccessKey(ctx context.Context, leadEmail string) (*model.SubmissionAccessKey, error) {
	var key model.SubmissionAccessKey
	err := r.db.WithContext(ctx).
		Where("lead_email = ?", leadEmail).
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessKeyNotFound
		}
		return nil, err
	}
	return &key, nil
}

// UpsertAccessKey stores or replaces the key for a lead email, so
// regenerating a code invalidates the previous one.
func (r *repository) UpsertAccessKey(ctx context.Context, key *model.SubmissionAccessKey) error {
	if key.ID == "" {
		key.ID = uuid.NewString()
	}
	if key.GeneratedAt.IsZero() {
		key.GeneratedAt = time.Now()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "lead_email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"code_hash", "team_name", "campus", "batch", "generated_at",
			}),
		}).
		Create(key).Error
}
