package mailer

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MockMailer logs instead of sending. Used in development when no email
// provider is configured.
type MockMailer struct {
	log *logrus.Logger
}

func NewMockMailer(log *logrus.Logger) *MockMailer {
	return &MockMailer{log: log}
}

func (m *MockMailer) Send(ctx context.Context, template string, recipient string, params map[string]string) (string, error) {
	id := "mock-" + uuid.NewString()
	m.log.WithFields(logrus.Fields{
		"template":   template,
		"to":         recipient,
		"message_id": id,
	}).Info("[MOCK EMAIL] send")
	return id, nil
}
