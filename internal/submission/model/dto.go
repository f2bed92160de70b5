// Package model provides domain models, DTOs, and validation rules for
// final submissions and their access gate.
package model

import "time"

// AccessRequest carries the credential for an unlock or submission call.
// Clients send either the raw distributed code or the hash a previous
// unlock returned; the hash wins when both are present.
type AccessRequest struct {
	LeadEmail      string `json:"lead_email"`
	AccessCode     string `json:"access_code,omitempty"`
	AccessCodeHash string `json:"access_code_hash,omitempty"`
}

// AccessResponse is returned on a successful unlock. Clients may cache
// AccessCodeHash and present it instead of the plaintext code for the
// rest of the session.
type AccessResponse struct {
	OK             bool   `json:"ok"`
	TeamName       string `json:"team_name"`
	LeadEmail      string `json:"lead_email"`
	AccessCodeHash string `json:"access_code_hash"`
}

// SubmitRequest is the final-submission payload. The embedded access
// fields are re-verified on every call.
type SubmitRequest struct {
	AccessRequest
	ProjectName      string `json:"project_name"`
	DeckURL          string `json:"deck_url"`
	RepoURL          string `json:"repo_url"`
	DemoURL          string `json:"demo_url,omitempty"`
	DocumentationURL string `json:"documentation_url,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// GenerateCodeRequest asks for a fresh access code for a registered team.
type GenerateCodeRequest struct {
	LeadEmail string `json:"lead_email"`
}

// GenerateCodeResponse returns the plaintext code exactly once; only its
// hash is persisted.
type GenerateCodeResponse struct {
	OK         bool   `json:"ok"`
	LeadEmail  string `json:"lead_email"`
	TeamName   string `json:"team_name"`
	AccessCode string `json:"access_code"`
}

// SubmissionItem represents one submission in admin listing responses.
type SubmissionItem struct {
	ID               string    `json:"id"`
	ProjectName      string    `json:"project_name"`
	TeamName         string    `json:"team_name"`
	LeadName         string    `json:"lead_name,omitempty"`
	LeadEmail        string    `json:"lead_email"`
	Campus           string    `json:"campus,omitempty"`
	Batch            string    `json:"batch,omitempty"`
	DeckURL          string    `json:"deck_url"`
	RepoURL          string    `json:"repo_url"`
	DemoURL          string    `json:"demo_url,omitempty"`
	DocumentationURL string    `json:"documentation_url,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ListResponse wraps admin listing items.
type ListResponse struct {
	Items []SubmissionItem `json:"items"`
}

// ToItem converts a stored submission into a listing item.
func ToItem(sub *FinalSubmission) SubmissionItem {
	return SubmissionItem{
		ID:               sub.ID,
		ProjectName:      sub.ProjectName,
		TeamName:         sub.TeamName,
		LeadName:         sub.LeadName,
		LeadEmail:        sub.LeadEmail,
		Campus:           sub.Campus,
		Batch:            sub.Batch,
		DeckURL:          sub.DeckURL,
		RepoURL:          sub.RepoURL,
		DemoURL:          sub.DemoURL,
		DocumentationURL: sub.DocumentationURL,
		Notes:            sub.Notes,
		CreatedAt:        sub.CreatedAt,
	}
}
