package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Email provider selection.
const (
	EmailProviderEmailJS = "emailjs"
	EmailProviderSMTP    = "smtp"
	EmailProviderMock    = "mock"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port        string
	CorsOrigins []string
}

type DatabaseConfig struct {
	// URL takes precedence over the discrete fields when set.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type EmailConfig struct {
	Provider string

	// EmailJS REST backend.
	EmailJSServiceID              string
	EmailJSPublicKey              string
	EmailJSVerificationTemplateID string
	EmailJSPasscodeTemplateID     string

	// SMTP backend.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFromName string
}

// Load reads configuration from the environment (a .env file may have been
// loaded beforehand) and validates required fields up front, so a
// misconfigured notifier fails at startup rather than on the first send.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_NAME", "hotel_checkin")
	v.SetDefault("EMAIL_PROVIDER", EmailProviderMock)
	v.SetDefault("SMTP_FROM_NAME", "Hotel Check-In System")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			CorsOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("MYSQL_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			Name:     v.GetString("DB_NAME"),
		},
		Email: EmailConfig{
			Provider:                      strings.ToLower(v.GetString("EMAIL_PROVIDER")),
			EmailJSServiceID:              v.GetString("EMAILJS_SERVICE_ID"),
			EmailJSPublicKey:              v.GetString("EMAILJS_PUBLIC_KEY"),
			EmailJSVerificationTemplateID: v.GetString("EMAILJS_TEMPLATE_ID"),
			EmailJSPasscodeTemplateID:     v.GetString("EMAILJS_ROOM_TEMPLATE_ID"),
			SMTPHost:                      v.GetString("SMTP_HOST"),
			SMTPPort:                      v.GetString("SMTP_PORT"),
			SMTPUsername:                  v.GetString("SMTP_USERNAME"),
			SMTPPassword:                  v.GetString("SMTP_PASSWORD"),
			SMTPFromName:                  v.GetString("SMTP_FROM_NAME"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Email.Provider {
	case EmailProviderMock:
	case EmailProviderEmailJS:
		missing := requiredFields(map[string]string{
			"EMAILJS_SERVICE_ID":       c.Email.EmailJSServiceID,
			"EMAILJS_PUBLIC_KEY":       c.Email.EmailJSPublicKey,
			"EMAILJS_TEMPLATE_ID":      c.Email.EmailJSVerificationTemplateID,
			"EMAILJS_ROOM_TEMPLATE_ID": c.Email.EmailJSPasscodeTemplateID,
		})
		if len(missing) > 0 {
			return fmt.Errorf("emailjs provider selected but missing: %s", strings.Join(missing, ", "))
		}
	case EmailProviderSMTP:
		missing := requiredFields(map[string]string{
			"SMTP_HOST":     c.Email.SMTPHost,
			"SMTP_PORT":     c.Email.SMTPPort,
			"SMTP_USERNAME": c.Email.SMTPUsername,
			"SMTP_PASSWORD": c.Email.SMTPPassword,
		})
		if len(missing) > 0 {
			return fmt.Errorf("smtp provider selected but missing: %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unknown email provider %q", c.Email.Provider)
	}
	return nil
}

func requiredFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
