package config

import "fmt"

// BotCheckConfig holds bot-verification gate configuration.
// The gate is disabled when VerifyURL is empty.
type BotCheckConfig struct {
	// VerifyURL is the token verification endpoint of the provider.
	VerifyURL string
	// Secret is the provider-issued server secret.
	Secret string
	// MinScore is the minimum accepted score, in [0,1].
	MinScore float64
	// ExpectedAction is the action name the token must carry, if non-empty.
	ExpectedAction string
}

// LoadBotCheckConfigFromEnv loads bot-verification configuration from environment variables.
func LoadBotCheckConfigFromEnv() BotCheckConfig {
	return BotCheckConfig{
		VerifyURL:      GetEnv("BOTCHECK_VERIFY_URL", ""),
		Secret:         GetEnv("BOTCHECK_SECRET", ""),
		MinScore:       GetEnvFloat("BOTCHECK_MIN_SCORE", 0.5),
		ExpectedAction: GetEnv("BOTCHECK_EXPECTED_ACTION", ""),
	}
}

// Enabled reports whether the bot-verification gate is configured.
func (c BotCheckConfig) Enabled() bool {
	return c.VerifyURL != ""
}

// Validate validates bot-verification configuration.
func (c BotCheckConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Secret == "" {
		return fmt.Errorf("BOTCHECK_SECRET is required when BOTCHECK_VERIFY_URL is set")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("BOTCHECK_MIN_SCORE must be in [0,1], got %v", c.MinScore)
	}
	return nil
}
