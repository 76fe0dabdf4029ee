package broker

import (
	"context"
	"time"

	"report-service/internal/models"

	"github.com/google/uuid"
)

// EventPublisher publishes report lifecycle events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishReportGenerated publishes a ReportGenerated event for one run
func (ep *EventPublisher) PublishReportGenerated(ctx context.Context, report string, duration time.Duration) error {
	event := &models.ReportGeneratedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.NewString(),
			EventType: models.EventTypeReportGenerated,
			Timestamp: time.Now(),
		},
		Report:      report,
		DurationMS:  duration.Milliseconds(),
		GeneratedAt: time.Now(),
	}
	return ep.producer.PublishEvent(ctx, "report-"+report, event)
}

// PublishReportFailed publishes a ReportFailed event for one run
func (ep *EventPublisher) PublishReportFailed(ctx context.Context, report string, reason error) error {
	event := &models.ReportFailedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.NewString(),
			EventType: models.EventTypeReportFailed,
			Timestamp: time.Now(),
		},
		Report: report,
		Reason: reason.Error(),
	}
	return ep.producer.PublishEvent(ctx, "report-"+report, event)
}
