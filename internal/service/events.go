package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/queue"
)

// EventPublisher is implemented by *queue.Publisher.
type EventPublisher interface {
	PublishPopularity(ctx context.Context, ev queue.PopularityRecorded) error
}

// NopPublisher drops every event.  Used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) PublishPopularity(context.Context, queue.PopularityRecorded) error { return nil }

const publishTimeout = 3 * time.Second

// notifier publishes popularity events on behalf of a service.  Failures
// are logged and never returned to the caller.
type notifier struct {
	events EventPublisher
	log    logrus.FieldLogger
}

func (n notifier) popularityRecorded(ctx context.Context, kind string, id int64, dimension string, score int) {
	if n.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	ev := queue.PopularityRecorded{
		Kind:       kind,
		EntityID:   id,
		Dimension:  dimension,
		Score:      score,
		RecordedAt: time.Now().UTC(),
	}
	if err := n.events.PublishPopularity(ctx, ev); err != nil && n.log != nil {
		n.log.WithError(err).WithFields(logrus.Fields{"kind": kind, "entity_id": id}).
			Warn("popularity event not published")
	}
}
