package notifier

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/radiofy/auth-service/internal/auth/domain"
)

// SMTPNotifier delivers one-time codes by email.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, user, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, destination, rawCode string, purpose domain.OtpPurpose, ttl time.Duration) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", destination)
	m.SetHeader("Subject", subjectFor(purpose))
	m.SetBody("text/html", bodyFor(purpose, rawCode, int(ttl.Minutes())))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

func subjectFor(purpose domain.OtpPurpose) string {
	if purpose == domain.PurposePasswordReset {
		return "Reset your Radiofy password"
	}
	return "Your Radiofy verification code"
}

func bodyFor(purpose domain.OtpPurpose, code string, minutes int) string {
	intro := "To finish signing in to <strong>Radiofy</strong>, please enter the verification code below in the app."
	if purpose == domain.PurposePasswordReset {
		intro = "You have requested to reset your <strong>Radiofy</strong> password. Please enter the code below in the app to continue."
	}

	return fmt.Sprintf(`
		<p>Hello,</p>
		<p>%s</p>
		<h2 style="letter-spacing:0.4em;">%s</h2>
		<p>This code will expire in %d minutes.</p>
		<p>If you did not request this code, you can safely ignore this email.</p>
	`, intro, code, minutes)
}
