package config

// MailConfig holds SMTP configuration for registration notifications.
// Notifications are disabled when Host is empty.
type MailConfig struct {
	// Host is the SMTP server host.
	Host string
	// Port is the SMTP server port.
	Port string
	// Username is the SMTP auth username and sender address.
	Username string
	// Password is the SMTP auth password.
	Password string
	// NotifyTo is the address registration notifications are sent to.
	NotifyTo string
}

// LoadMailConfigFromEnv loads mail configuration from environment variables.
func LoadMailConfigFromEnv() MailConfig {
	return MailConfig{
		Host:     GetEnv("MAIL_HOST", ""),
		Port:     GetEnv("MAIL_PORT", "587"),
		Username: GetEnv("MAIL_USERNAME", ""),
		Password: GetEnv("MAIL_PASSWORD", ""),
		NotifyTo: GetEnv("MAIL_NOTIFY_TO", ""),
	}
}

// Enabled reports whether notification mail is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}
