package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultEmailJSBaseURL = "https://api.emailjs.com"

// EmailJSConfig carries the EmailJS REST credentials and the remote template
// ids the logical templates map onto.
type EmailJSConfig struct {
	BaseURL                string
	ServiceID              string
	PublicKey              string
	VerificationTemplateID string
	PasscodeTemplateID     string
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSMailer sends through the EmailJS REST API. The recipient is routed
// by the template's "To Email" field, which reads the email/to_email params.
type EmailJSMailer struct {
	client *resty.Client
	cfg    EmailJSConfig
}

func NewEmailJSMailer(cfg EmailJSConfig) *EmailJSMailer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultEmailJSBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &EmailJSMailer{client: client, cfg: cfg}
}

func (m *EmailJSMailer) templateID(template string) (string, error) {
	switch template {
	case TemplateVerificationCode:
		return m.cfg.VerificationTemplateID, nil
	case TemplateRoomPasscode:
		return m.cfg.PasscodeTemplateID, nil
	}
	return "", fmt.Errorf("unknown template %q", template)
}

func (m *EmailJSMailer) Send(ctx context.Context, template string, recipient string, params map[string]string) (string, error) {
	templateID, err := m.templateID(template)
	if err != nil {
		return "", err
	}
	if recipient == "" {
		return "", fmt.Errorf("recipient is required")
	}

	body := emailJSRequest{
		ServiceID:      m.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         m.cfg.PublicKey,
		TemplateParams: params,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/v1.0/email/send")
	if err != nil {
		return "", fmt.Errorf("emailjs request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("emailjs error %d: %s", resp.StatusCode(), resp.String())
	}

	// EmailJS answers with a bare status text, not a structured id.
	return resp.String(), nil
}
