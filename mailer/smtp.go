package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// SMTPConfig is the plain-auth SMTP transport configuration.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

// SMTPMailer renders the templates in-process and sends multipart
// (plain + HTML) messages.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, template string, recipient string, params map[string]string) (string, error) {
	if recipient == "" {
		return "", fmt.Errorf("recipient is required")
	}

	var subject, plain, html string
	switch template {
	case TemplateVerificationCode:
		subject = fmt.Sprintf("Your Hotel Check-In Verification Code: %s", params[ParamVerificationCode])
		plain = verificationPlainBody(params)
		html = verificationHTMLBody(params)
	case TemplateRoomPasscode:
		subject = fmt.Sprintf("Your Room Passcode: %s", params[ParamRoomPasscode])
		plain = passcodePlainBody(params)
		html = passcodeHTMLBody(params)
	default:
		return "", fmt.Errorf("unknown template %q", template)
	}

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	boundary := "----=_CHECKIN_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plain + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(html + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{recipient}, []byte(sb.String())); err != nil {
		return "", err
	}
	return "smtp-" + uuid.NewString(), nil
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func verificationPlainBody(p map[string]string) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for choosing our hotel! Your booking has been confirmed.\n\n"+
			"Booking Details:\n"+
			"- Room Type: %s\n"+
			"- Check-in: %s\n"+
			"- Check-out: %s\n"+
			"- Total: %s\n\n"+
			"Your Verification Code: %s\n\n"+
			"Please save this code. You'll need it at the self-check-in kiosk.\n\n"+
			"Best regards,\nHotel Management Team\n",
		p[ParamToName], p[ParamRoomType], p[ParamCheckIn], p[ParamCheckOut],
		p[ParamTotalPrice], p[ParamVerificationCode],
	)
}

func verificationHTMLBody(p map[string]string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Booking Confirmation</title></head>
<body style="font-family:Arial, Helvetica, sans-serif; background:#f4f4f4; color:#222;">
<div style="max-width:640px; margin:20px auto; background:#fff; padding:24px; border-radius:8px;">
  <h2>Hotel Check-In Confirmation</h2>
  <p>Dear %s,</p>
  <p>Thank you for choosing our hotel! Your booking has been confirmed.</p>
  <p><strong>Room Type:</strong> %s<br>
     <strong>Check-in:</strong> %s<br>
     <strong>Check-out:</strong> %s<br>
     <strong>Total:</strong> %s</p>
  <div style="border:3px dashed #1976d2; border-radius:8px; padding:20px; text-align:center;">
    <p style="font-weight:bold; margin:0 0 10px 0;">Your Verification Code</p>
    <p style="font-size:32px; letter-spacing:8px; color:#1976d2; margin:0;">%s</p>
  </div>
  <p>Present this code at the self-check-in kiosk or show it to hotel staff upon arrival.</p>
  <p>Best regards,<br><strong>Hotel Management Team</strong></p>
</div>
</body>
</html>`,
		htmlEscape(p[ParamToName]), htmlEscape(p[ParamRoomType]),
		htmlEscape(p[ParamCheckIn]), htmlEscape(p[ParamCheckOut]),
		htmlEscape(p[ParamTotalPrice]), htmlEscape(p[ParamVerificationCode]),
	)
}

func passcodePlainBody(p map[string]string) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Here is the passcode for your room: %s\n\n"+
			"Room Type: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n\n"+
			"Please keep this code safe and do not share it with anyone.\n\n"+
			"Best regards,\nHotel Management Team\n",
		p[ParamToName], p[ParamRoomPasscode], p[ParamRoomType],
		p[ParamCheckIn], p[ParamCheckOut],
	)
}

func passcodeHTMLBody(p map[string]string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Your Room Access Code</title></head>
<body style="font-family:Arial, Helvetica, sans-serif; background:#f4f4f4; color:#222;">
<div style="max-width:640px; margin:20px auto; background:#fff; padding:24px; border-radius:8px;">
  <h2>Your Room Access Code</h2>
  <p>Dear %s,</p>
  <p>Here is the passcode for your room. Please keep it safe and do not share it.</p>
  <p><strong>Room Type:</strong> %s<br>
     <strong>Check-in:</strong> %s<br>
     <strong>Check-out:</strong> %s</p>
  <div style="border:3px dashed #1976d2; border-radius:8px; padding:20px; text-align:center;">
    <p style="font-weight:bold; margin:0 0 10px 0;">Your Room Passcode</p>
    <p style="font-size:32px; letter-spacing:8px; color:#1976d2; margin:0;">%s</p>
  </div>
  <p>Use this passcode to access your room during your stay.</p>
  <p>Best regards,<br><strong>Hotel Management Team</strong></p>
</div>
</body>
</html>`,
		htmlEscape(p[ParamToName]), htmlEscape(p[ParamRoomType]),
		htmlEscape(p[ParamCheckIn]), htmlEscape(p[ParamCheckOut]),
		htmlEscape(p[ParamRoomPasscode]),
	)
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
