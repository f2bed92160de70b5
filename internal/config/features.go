package config

// FeatureConfig holds global open/closed switches for the public write paths.
// A closed window rejects writes with 403 regardless of credential validity.
type FeatureConfig struct {
	// RegistrationOpen gates the public registration endpoint.
	RegistrationOpen bool
	// SubmissionsOpen gates the final-submission write endpoint.
	SubmissionsOpen bool
}

// LoadFeatureConfigFromEnv loads feature switches from environment variables.
func LoadFeatureConfigFromEnv() FeatureConfig {
	return FeatureConfig{
		RegistrationOpen: GetEnvBool("REGISTRATION_OPEN", true),
		SubmissionsOpen:  GetEnvBool("SUBMISSIONS_OPEN", true),
	}
}
