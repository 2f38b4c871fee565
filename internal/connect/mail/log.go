package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// LogDispatcher writes messages to the log instead of sending them. Bodies
// are only logged at debug level since they carry one-time codes.
type LogDispatcher struct{}

func (LogDispatcher) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	log := slogx.FromContext(ctx)
	log.Info("mail dispatched (log driver)", "to", msg.To, "subject", msg.Subject)
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("mail body", "to", msg.To, "html", msg.HTML)
	}
	return nil
}
