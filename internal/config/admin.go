package config

import (
	"fmt"
	"time"
)

// AdminConfig holds admin authentication configuration.
// Admin endpoints accept either HTTP Basic credentials or a session
// cookie issued by the login endpoint.
type AdminConfig struct {
	// Username is the admin username for HTTP Basic and login.
	Username string
	// Password is the admin password for HTTP Basic and login.
	Password string
	// SessionSecret signs session tokens issued on login.
	SessionSecret string
	// SessionTTL is the session token lifetime.
	SessionTTL time.Duration
	// CookieName is the session cookie name.
	CookieName string
	// CookieSecure marks the session cookie as HTTPS-only.
	CookieSecure bool
}

// LoadAdminConfigFromEnv loads admin configuration from environment variables.
func LoadAdminConfigFromEnv() AdminConfig {
	return AdminConfig{
		Username:      GetEnv("ADMIN_USERNAME", ""),
		Password:      GetEnv("ADMIN_PASSWORD", ""),
		SessionSecret: GetEnv("ADMIN_SESSION_SECRET", ""),
		SessionTTL:    GetEnvDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		CookieName:    GetEnv("ADMIN_COOKIE_NAME", "hackfest_admin"),
		CookieSecure:  GetEnvBool("ADMIN_COOKIE_SECURE", true),
	}
}

// Validate validates admin configuration.
func (c AdminConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("ADMIN_SESSION_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SessionTTL must be greater than 0")
	}
	return nil
}
