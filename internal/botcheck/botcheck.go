// Package botcheck verifies bot-protection tokens against the provider's
// verification endpoint and gates public write requests on the result.
package botcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hackfest/api/internal/config"
)

// Result is the provider's verdict on a token.
type Result struct {
	Success bool     `json:"success"`
	Score   float64  `json:"score"`
	Action  string   `json:"action"`
	Errors  []string `json:"error-codes"`
}

// Verifier checks a client-supplied token with the protection provider.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*Result, error)
}

// HTTPVerifier verifies tokens over the provider's HTTP API.
type HTTPVerifier struct {
	cfg    config.BotCheckConfig
	client *http.Client
}

// NewHTTPVerifier creates a verifier for the configured provider.
func NewHTTPVerifier(cfg config.BotCheckConfig) *HTTPVerifier {
	return &HTTPVerifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify posts the token to the provider and decodes its verdict.
func (v *HTTPVerifier) Verify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", v.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling verification endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verification endpoint returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding verification response: %w", err)
	}
	return &result, nil
}

// Accept reports whether a verdict clears the configured bar.
func (v *HTTPVerifier) Accept(result *Result) bool {
	if !result.Success {
		return false
	}
	if result.Score < v.cfg.MinScore {
		return false
	}
	if v.cfg.ExpectedAction != "" && result.Action != v.cfg.ExpectedAction {
		return false
	}
	return true
}
