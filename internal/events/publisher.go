package events

import (
	"context"

	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/telemetry"
)

// Publisher sends events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher drops every event; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, e Event) error { return nil }

// PublishBestEffort publishes e and only logs failures; events never fail
// the operation that produced them.
func PublishBestEffort(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		metrics.IncEventPublishFailed()
		telemetry.Warn("events.publish_failed", map[string]any{
			"type":       e.Type,
			"resume_id":  e.ResumeID,
			"request_id": e.RequestID,
			"error":      err,
		})
	}
}
