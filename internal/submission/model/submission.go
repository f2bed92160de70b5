package model

import "time"

// FinalSubmission represents one final-deliverable submission.
// Matches the team_submissions table schema. Repeated submissions with a
// valid code accumulate as separate records; see the admin listing for
// the full history per team.
type FinalSubmission struct {
	ID               string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	ProjectName      string    `gorm:"column:project_name;type:varchar(255);not null" json:"project_name"`
	LeadEmail        string    `gorm:"column:lead_email;type:varchar(255);not null;index" json:"lead_email"`
	DeckURL          string    `gorm:"column:deck_url;type:text;not null" json:"deck_url"`
	RepoURL          string    `gorm:"column:repo_url;type:text;not null" json:"repo_url"`
	DemoURL          string    `gorm:"column:demo_url;type:text" json:"demo_url,omitempty"`
	DocumentationURL string    `gorm:"column:documentation_url;type:text" json:"documentation_url,omitempty"`
	Notes            string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	AccessHash       string    `gorm:"column:access_hash;type:varchar(64);not null" json:"-"`
	TeamName         string    `gorm:"column:team_name;type:varchar(255);not null" json:"team_name"`
	LeadName         string    `gorm:"column:lead_name;type:varchar(255)" json:"lead_name,omitempty"`
	Campus           string    `gorm:"column:campus;type:varchar(255)" json:"campus,omitempty"`
	Batch            string    `gorm:"column:batch;type:varchar(255)" json:"batch,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (FinalSubmission) TableName() string {
	return "team_submissions"
}

// SubmissionAccessKey maps a normalized lead email to the hash of the
// access code distributed to that team. Plaintext codes are never stored.
type SubmissionAccessKey struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	LeadEmail   string    `gorm:"column:lead_email;type:varchar(255);not null;uniqueIndex" json:"lead_email"`
	CodeHash    string    `gorm:"column:code_hash;type:varchar(64);not null" json:"-"`
	TeamName    string    `gorm:"column:team_name;type:varchar(255)" json:"team_name,omitempty"`
	Campus      string    `gorm:"column:campus;type:varchar(255)" json:"campus,omitempty"`
	Batch       string    `gorm:"column:batch;type:varchar(255)" json:"batch,omitempty"`
	GeneratedAt time.Time `gorm:"column:generated_at;not null" json:"generated_at"`
}

// TableName specifies the table name for GORM.
func (SubmissionAccessKey) TableName() string {
	return "submission_access_keys"
}
