package model

import (
	"time"
)

// TeamRegistration represents an accepted team registration.
// Matches the team_registrations table schema. Records are immutable
// once accepted; the lead email is the uniqueness key.
type TeamRegistration struct {
	ID             string       `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	TeamName       string       `gorm:"column:team_name;type:varchar(255);not null" json:"team_name"`
	TeamSize       int          `gorm:"column:team_size;not null" json:"team_size"`
	LeadName       string       `gorm:"column:lead_name;type:varchar(255);not null" json:"lead_name"`
	LeadEmail      string       `gorm:"column:lead_email;type:varchar(255);not null;uniqueIndex" json:"lead_email"`
	LeadGender     string       `gorm:"column:lead_gender;type:varchar(32);not null" json:"lead_gender"`
	Campus         string       `gorm:"column:campus;type:varchar(255)" json:"campus,omitempty"`
	Batch          string       `gorm:"column:batch;type:varchar(255)" json:"batch,omitempty"`
	AccessCodeHash string       `gorm:"column:submission_access_code_hash;type:varchar(64)" json:"-"`
	Members        []TeamMember `gorm:"foreignKey:RegistrationID" json:"members"`
	CreatedAt      time.Time    `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (TeamRegistration) TableName() string {
	return "team_registrations"
}

// TeamMember represents one non-lead member of a registered team.
// Slots are renumbered 1..N during validation.
type TeamMember struct {
	ID             string `gorm:"primaryKey;column:id;type:uuid" json:"-"`
	RegistrationID string `gorm:"column:registration_id;type:uuid;not null;index" json:"-"`
	Slot           int    `gorm:"column:slot;not null" json:"slot"`
	Name           string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email          string `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Gender         string `gorm:"column:gender;type:varchar(32);not null" json:"gender"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// HasFemaleParticipant reports whether the lead or any member has
// gender "female" (case-insensitive).
func (r *TeamRegistration) HasFemaleParticipant() bool {
	if isFemale(r.LeadGender) {
		return true
	}
	for _, m := range r.Members {
		if isFemale(m.Gender) {
			return true
		}
	}
	return false
}
