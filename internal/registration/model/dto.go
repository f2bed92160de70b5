// Package model provides domain models, DTOs, and validation rules for
// team registration.
package model

import "time"

// Participant is one person in a registration payload.
type Participant struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

// RegisterRequest represents the public registration payload.
// Members are positional: the first TeamSize-1 slots are required, the
// rest are optional UI slots that may arrive empty.
type RegisterRequest struct {
	TeamName string        `json:"team_name"`
	TeamSize int           `json:"team_size"`
	Campus   string        `json:"campus"`
	Batch    string        `json:"batch"`
	Lead     Participant   `json:"lead"`
	Members  []Participant `json:"members"`
}

// RegistrationItem represents one registration in admin listing responses.
type RegistrationItem struct {
	ID        string        `json:"id"`
	TeamName  string        `json:"team_name"`
	TeamSize  int           `json:"team_size"`
	Campus    string        `json:"campus,omitempty"`
	Batch     string        `json:"batch,omitempty"`
	Lead      Participant   `json:"lead"`
	Members   []Participant `json:"members"`
	CreatedAt time.Time     `json:"created_at"`
}

// ListResponse wraps admin listing items.
type ListResponse struct {
	Items []RegistrationItem `json:"items"`
}

// ToItem converts a stored registration into a listing item.
func ToItem(reg *TeamRegistration) RegistrationItem {
	members := make([]Participant, 0, len(reg.Members))
	for _, m := range reg.Members {
		members = append(members, Participant{Name: m.Name, Email: m.Email, Gender: m.Gender})
	}
	return RegistrationItem{
		ID:       reg.ID,
		TeamName: reg.TeamName,
		TeamSize: reg.TeamSize,
		Campus:   reg.Campus,
		Batch:    reg.Batch,
		Lead: Participant{
			Name:   reg.LeadName,
			Email:  reg.LeadEmail,
			Gender: reg.LeadGender,
		},
		Members:   members,
		CreatedAt: reg.CreatedAt,
	}
}
