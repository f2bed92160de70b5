// Package service provides business logic for the final-submission gate:
// access-code verification, submission writes, and code generation.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/hackfest/api/internal/access"
	regModel "github.com/hackfest/api/internal/registration/model"
	regRepository "github.com/hackfest/api/internal/registration/repository"
	"github.com/hackfest/api/internal/submission/model"
	"github.com/hackfest/api/internal/submission/repository"
)

// AccessResult is a successful verification outcome: the registration the
// credential unlocked, and the normalized hash clients may cache and
// present on later calls.
type AccessResult struct {
	Registration *regModel.TeamRegistration
	Hash         string
}

// Service defines business logic operations for final submissions.
type Service interface {
	// VerifyAccess checks a credential against the team's stored hash.
	// Every call re-verifies; there is no server-side unlocked state.
	VerifyAccess(ctx context.Context, req *model.AccessRequest) (*AccessResult, error)

	// Submit verifies access, validates the payload, and stores the submission.
	Submit(ctx context.Context, req *model.SubmitRequest) (*model.FinalSubmission, error)

	// List returns stored submissions newest-first.
	List(ctx context.Context) ([]model.FinalSubmission, error)

	// GenerateCode mints a fresh access code for a registered team and
	// persists only its hash. The plaintext is returned exactly once.
	GenerateCode(ctx context.Context, leadEmail string) (*model.GenerateCodeResponse, error)
}

type service struct {
	repo    repository.Repository
	regRepo regRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new submission service instance.
func New(repo repository.Repository, regRepo regRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		regRepo: regRepo,
		logger:  logger,
	}
}

// VerifyAccess resolves the expected hash for the team and compares the
// supplied credential against it.
func (s *service) VerifyAccess(ctx context.Context, req *model.AccessRequest) (*AccessResult, error) {
	email := regModel.NormalizeEmail(req.LeadEmail)
	if email == "" {
		return nil, model.NewValidationError("lead email is required")
	}

	reg, err := s.regRepo.FindByLeadEmail(ctx, email)
	if err != nil {
		if errors.Is(err, regRepository.ErrNotFound) {
			return nil, model.ErrRegistrationNotFound
		}
		return nil, err
	}

	// A hash embedded on the registration record takes precedence over
	// the separate access-key registry.
	expected := strings.TrimSpace(reg.AccessCodeHash)
	if expected == "" {
		key, err := s.repo.GetAccessKey(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccessKeyNotFound) {
				return nil, model.ErrCodeNotAssigned
			}
			return nil, err
		}
		expected = key.CodeHash
	}
	if expected == "" {
		return nil, model.ErrCodeNotAssigned
	}

	var cred access.Credential
	if req.AccessCodeHash != "" {
		cred = access.CredentialFromHash(req.AccessCodeHash)
	} else {
		cred = access.CredentialFromCode(req.AccessCode)
	}
	if cred.Empty() {
		return nil, model.NewValidationError("access code or access code hash is required")
	}

	ok, err := cred.Matches(expected)
	if err != nil {
		return nil, model.NewValidationError("access code or access code hash is required")
	}
	if !ok {
		return nil, model.ErrCodeInvalid
	}

	hash, err := cred.Hash()
	if err != nil {
		return nil, err
	}
	return &AccessResult{Registration: reg, Hash: hash}, nil
}

// Submit re-verifies access, validates the payload, and appends the
// submission with a denormalized registration snapshot.
func (s *service) Submit(ctx context.Context, req *model.SubmitRequest) (*model.FinalSubmission, error) {
	result, err := s.VerifyAccess(ctx, &req.AccessRequest)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	reg := result.Registration
	sub := &model.FinalSubmission{
		ProjectName:      strings.TrimSpace(req.ProjectName),
		LeadEmail:        reg.LeadEmail,
		DeckURL:          strings.TrimSpace(req.DeckURL),
		RepoURL:          strings.TrimSpace(req.RepoURL),
		DemoURL:          strings.TrimSpace(req.DemoURL),
		DocumentationURL: strings.TrimSpace(req.DocumentationURL),
		Notes:            strings.TrimSpace(req.Notes),
		AccessHash:       result.Hash,
		TeamName:         reg.TeamName,
		LeadName:         reg.LeadName,
		Campus:           reg.Campus,
		Batch:            reg.Batch,
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Infow("final submission stored",
		"team_name", sub.TeamName,
		"lead_email", sub.LeadEmail,
		"project_name", sub.ProjectName,
	)
	return sub, nil
}

// List returns stored submissions newest-first.
func (s *service) List(ctx context.Context) ([]model.FinalSubmission, error) {
	return s.repo.ListSubmissions(ctx)
}

// GenerateCode mints and stores a fresh code hash for a registered team.
func (s *service) GenerateCode(ctx context.Context, leadEmail string) (*model.GenerateCodeResponse, error) {
	email := regModel.NormalizeEmail(leadEmail)
	if email == "" {
		return nil, model.NewValidationError("lead email is required")
	}

	reg, err := s.regRepo.FindByLeadEmail(ctx, email)
	if err != nil {
		if errors.Is(err, regRepository.ErrNotFound) {
			return nil, model.ErrRegistrationNotFound
		}
		return nil, err
	}

	code, err := access.GenerateCode()
	if err != nil {
		return nil, err
	}

	key := &model.SubmissionAccessKey{
		LeadEmail: email,
		CodeHash:  access.HashCode(code),
		TeamName:  reg.TeamName,
		Campus:    reg.Campus,
		Batch:     reg.Batch,
	}
	if err := s.repo.UpsertAccessKey(ctx, key); err != nil {
		return nil, err
	}

	s.logger.Infow("access code generated",
		"team_name", reg.TeamName,
		"lead_email", email,
	)
	return &model.GenerateCodeResponse{
		OK:         true,
		LeadEmail:  email,
		TeamName:   reg.TeamName,
		AccessCode: code,
	}, nil
}
