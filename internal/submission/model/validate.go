package model

import (
	"net/url"
	"strings"
)

// validateURL checks that a value parses as an absolute http(s) URL.
func validateURL(field, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return NewValidationError("%s is not a valid URL", field)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewValidationError("%s must be an http or https URL", field)
	}
	if u.Host == "" {
		return NewValidationError("%s is not a valid URL", field)
	}
	return nil
}

// Validate checks the submission-specific fields. Access verification
// happens separately, before this runs.
func (r *SubmitRequest) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return NewValidationError("project name is required")
	}

	if strings.TrimSpace(r.DeckURL) == "" {
		return NewValidationError("deck URL is required")
	}
	if err := validateURL("deck URL", r.DeckURL); err != nil {
		return err
	}

	if strings.TrimSpace(r.RepoURL) == "" {
		return NewValidationError("repository URL is required")
	}
	if err := validateURL("repository URL", r.RepoURL); err != nil {
		return err
	}

	if strings.TrimSpace(r.DemoURL) != "" {
		if err := validateURL("demo URL", r.DemoURL); err != nil {
			return err
		}
	}
	if strings.TrimSpace(r.DocumentationURL) != "" {
		if err := validateURL("documentation URL", r.DocumentationURL); err != nil {
			return err
		}
	}

	return nil
}
