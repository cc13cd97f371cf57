package notifier

import (
	"context"
	"log"
	"time"

	"github.com/radiofy/auth-service/internal/auth/domain"
)

// LogNotifier stands in for SMTP in development. It logs delivery metadata
// only; the raw code must never reach a log line.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, destination, rawCode string, purpose domain.OtpPurpose, ttl time.Duration) error {
	log.Printf("otp delivery: purpose=%s to=%s ttl=%s", purpose, destination, ttl)
	return nil
}
