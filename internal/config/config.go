// Package config provides environment-driven application configuration.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Guard holds rate guard configuration.
	Guard GuardConfig
	// Admin holds admin authentication configuration.
	Admin AdminConfig
	// Features holds global open/closed switches.
	Features FeatureConfig
	// Mail holds notification mail configuration.
	Mail MailConfig
	// BotCheck holds bot-verification gate configuration.
	BotCheck BotCheckConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		Guard:    LoadGuardConfigFromEnv(),
		Admin:    LoadAdminConfigFromEnv(),
		Features: LoadFeatureConfigFromEnv(),
		Mail:     LoadMailConfigFromEnv(),
		BotCheck: LoadBotCheckConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Guard.Validate(); err != nil {
		return fmt.Errorf("guard config validation failed: %w", err)
	}

	if err := c.Admin.Validate(); err != nil {
		return fmt.Errorf("admin config validation failed: %w", err)
	}

	if err := c.BotCheck.Validate(); err != nil {
		return fmt.Errorf("botcheck config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
