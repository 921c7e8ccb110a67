package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hotel-checkin-backend/dispatch"
	"hotel-checkin-backend/models"
	"hotel-checkin-backend/repository"
)

type countingMailer struct {
	mu    sync.Mutex
	sends []string
	err   error
}

func (m *countingMailer) Send(ctx context.Context, template string, recipient string, params map[string]string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, template)
	return "test-message", nil
}

func newPasscodeFixture(b *models.Booking) (*PasscodeService, *fakeBookingRepo, *countingMailer) {
	repo := newFakeBookingRepo()
	if b != nil {
		repo.put(repository.BookingsTable, b)
	}
	mail := &countingMailer{}
	d := dispatch.New(repo, mail, testLogger())
	return NewPasscodeService(repo, d), repo, mail
}

func verifiedBooking() *models.Booking {
	b := confirmedBooking("123456")
	b.Verified = true
	return b
}

func TestResend_RequiresBookingID(t *testing.T) {
	svc, _, mail := newPasscodeFixture(nil)

	_, err := svc.Resend(context.Background(), 0, false)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(mail.sends) != 0 {
		t.Fatalf("no email should go out")
	}
}

func TestResend_UnknownBooking(t *testing.T) {
	svc, _, _ := newPasscodeFixture(nil)

	_, err := svc.Resend(context.Background(), 42, false)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestResend_Preconditions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Booking)
		want   error
	}{
		{"not verified", func(b *models.Booking) { b.Verified = false }, ErrNotVerified},
		{"no passcode", func(b *models.Booking) { b.RoomPasscode = "" }, ErrMissingPasscode},
		{"no email", func(b *models.Booking) { b.Email = "" }, ErrMissingEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := verifiedBooking()
			tc.mutate(b)
			svc, _, mail := newPasscodeFixture(b)

			_, err := svc.Resend(context.Background(), b.ID, false)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(mail.sends) != 0 {
				t.Fatalf("no email should go out on a failed precondition")
			}
		})
	}
}

func TestResend_FirstSend(t *testing.T) {
	b := verifiedBooking()
	svc, repo, mail := newPasscodeFixture(b)

	msg, err := svc.Resend(context.Background(), b.ID, false)
	if err != nil {
		t.Fatalf("Resend returned error: %v", err)
	}
	if msg != "Room passcode email sent." {
		t.Fatalf("message = %q", msg)
	}
	if len(mail.sends) != 1 {
		t.Fatalf("expected 1 send, got %d", len(mail.sends))
	}
	if !repo.primary[b.ID].RoomPasscodeEmailSent {
		t.Fatalf("sent flag not recorded")
	}
}

func TestResend_IdempotentWithoutForce(t *testing.T) {
	b := verifiedBooking()
	b.RoomPasscodeEmailSent = true
	svc, _, mail := newPasscodeFixture(b)

	msg, err := svc.Resend(context.Background(), b.ID, false)
	if err != nil {
		t.Fatalf("Resend returned error: %v", err)
	}
	if msg != "Room passcode email was already sent." {
		t.Fatalf("message = %q", msg)
	}
	if len(mail.sends) != 0 {
		t.Fatalf("already-sent booking must not trigger a send, got %d", len(mail.sends))
	}
}

func TestResend_ForceSendsAgain(t *testing.T) {
	b := verifiedBooking()
	b.RoomPasscodeEmailSent = true
	svc, _, mail := newPasscodeFixture(b)

	msg, err := svc.Resend(context.Background(), b.ID, true)
	if err != nil {
		t.Fatalf("Resend returned error: %v", err)
	}
	if msg != "Room passcode email sent." {
		t.Fatalf("message = %q", msg)
	}
	if len(mail.sends) != 1 {
		t.Fatalf("force must send exactly once, got %d", len(mail.sends))
	}
}

func TestResend_PropagatesSendFailure(t *testing.T) {
	b := verifiedBooking()
	svc, repo, mail := newPasscodeFixture(b)
	mail.err = errors.New("smtp down")

	_, err := svc.Resend(context.Background(), b.ID, false)
	if err == nil {
		t.Fatalf("expected error from failing notifier")
	}
	if repo.primary[b.ID].RoomPasscodeEmailSent {
		t.Fatalf("sent flag must not be set on failure")
	}
}
