package messaging

import (
	"context"
	"log/slog"

	"github.com/tetrahub/academic-records/internal/domain/shared"
)

// AuditHandler returns a handler that writes every event to logger. Rejected
// teacher assignments are logged at WARN, everything else at INFO.
func AuditHandler(logger *slog.Logger) shared.EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")

	return func(event shared.Event) error {
		attrs := make([]any, 0, 2*len(event.Payload())+4)
		attrs = append(attrs,
			"event_type", string(event.EventType()),
			"aggregate_id", event.AggregateID(),
		)
		for k, v := range event.Payload() {
			attrs = append(attrs, k, v)
		}

		level := slog.LevelInfo
		if event.EventType() == shared.EventTeacherAssignmentRejected {
			level = slog.LevelWarn
		}
		logger.Log(context.Background(), level, "domain event", attrs...)
		return nil
	}
}
