package model

import (
	"regexp"
	"strings"
)

const (
	// MinTeamSize is the smallest allowed team, lead included.
	MinTeamSize = 3
	// MaxTeamSize is the largest allowed team, lead included.
	MaxTeamSize = 5
	// MaxMemberSlots is the number of member slots the registration form renders.
	MaxMemberSlots = MaxTeamSize - 1
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SlotSpec describes one member slot of the registration form.
type SlotSpec struct {
	// Slot is the 1-based slot number.
	Slot int
	// Required marks slots mandated by the declared team size.
	Required bool
}

// MemberSlots returns the slot layout for a team size: the first
// teamSize-1 slots are required, the remainder up to MaxMemberSlots are
// optional. Computed once here so validation never re-derives the
// boundary from array positions.
func MemberSlots(teamSize int) []SlotSpec {
	slots := make([]SlotSpec, MaxMemberSlots)
	for i := range slots {
		slots[i] = SlotSpec{Slot: i + 1, Required: i < teamSize-1}
	}
	return slots
}

// ValidEmail reports whether an address is syntactically acceptable.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isFemale(gender string) bool {
	return strings.EqualFold(strings.TrimSpace(gender), "female")
}

func isEmptyParticipant(p Participant) bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Email) == "" &&
		strings.TrimSpace(p.Gender) == ""
}

// Normalize validates a registration payload and produces the normalized
// record: emails lowercased, empty optional slots dropped, surviving
// slots renumbered 1..N. ID and CreatedAt are assigned by the store at
// write time. Pure function; rule violations come back as ValidationError.
func (r *RegisterRequest) Normalize() (*TeamRegistration, error) {
	teamName := strings.TrimSpace(r.TeamName)
	if teamName == "" {
		return nil, NewValidationError("team name is required")
	}

	if r.TeamSize < MinTeamSize || r.TeamSize > MaxTeamSize {
		return nil, NewValidationError("team size must be between %d and %d", MinTeamSize, MaxTeamSize)
	}

	if strings.TrimSpace(r.Lead.Name) == "" {
		return nil, NewValidationError("lead name is required")
	}
	if !ValidEmail(r.Lead.Email) {
		return nil, NewValidationError("lead email is invalid")
	}
	if strings.TrimSpace(r.Lead.Gender) == "" {
		return nil, NewValidationError("lead gender is required")
	}

	var members []TeamMember
	for i, spec := range MemberSlots(r.TeamSize) {
		var p Participant
		if i < len(r.Members) {
			p = r.Members[i]
		}

		if spec.Required {
			if isEmptyParticipant(p) ||
				strings.TrimSpace(p.Name) == "" ||
				strings.TrimSpace(p.Email) == "" ||
				strings.TrimSpace(p.Gender) == "" {
				return nil, NewValidationError("member %d is incomplete: name, email, and gender are required", spec.Slot)
			}
			if !ValidEmail(p.Email) {
				return nil, NewValidationError("member %d email is invalid", spec.Slot)
			}
		} else {
			if isEmptyParticipant(p) {
				continue
			}
			if p.Email != "" && !ValidEmail(p.Email) {
				return nil, NewValidationError("member %d email is invalid", spec.Slot)
			}
		}

		members = append(members, TeamMember{
			Slot:   len(members) + 1,
			Name:   strings.TrimSpace(p.Name),
			Email:  NormalizeEmail(p.Email),
			Gender: strings.TrimSpace(p.Gender),
		})
	}

	if len(members) != r.TeamSize-1 {
		return nil, NewValidationError("member count does not match team size: expected %d, got %d", r.TeamSize-1, len(members))
	}

	reg := &TeamRegistration{
		TeamName:   teamName,
		TeamSize:   r.TeamSize,
		LeadName:   strings.TrimSpace(r.Lead.Name),
		LeadEmail:  NormalizeEmail(r.Lead.Email),
		LeadGender: strings.TrimSpace(r.Lead.Gender),
		Campus:     strings.TrimSpace(r.Campus),
		Batch:      strings.TrimSpace(r.Batch),
		Members:    members,
	}

	if !reg.HasFemaleParticipant() {
		return nil, NewValidationError("at least one team member must be female")
	}

	return reg, nil
}
