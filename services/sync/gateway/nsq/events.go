package nsq

import (
	"context"
	"fmt"

	"github.com/finmirror/finmirror/internal/pkg/models"
	pkgnsq "github.com/finmirror/finmirror/internal/pkg/nsq"
)

const (
	topicSyncCompleted = "finmirror.sync.completed"
	topicSyncFailed    = "finmirror.sync.failed"
)

// EventGW publishes sync lifecycle events to NSQ.
type EventGW struct {
	producer *pkgnsq.Producer
}

// NewEventGW creates a new event gateway instance
func NewEventGW(producer *pkgnsq.Producer) *EventGW {
	return &EventGW{producer: producer}
}

// PublishSyncEvent publishes the event on the topic matching its status.
func (g *EventGW) PublishSyncEvent(_ context.Context, event *models.SyncEvent) error {
	topic := topicSyncCompleted
	if event.Status == "failed" {
		topic = topicSyncFailed
	}

	if err := g.producer.Publish(topic, event); err != nil {
		return fmt.Errorf("failed to publish sync event: %w", err)
	}
	return nil
}
