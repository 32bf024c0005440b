package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// defaultDialTimeout bounds the TCP dial and AMQP handshake when the
// caller's context carries no deadline.
const defaultDialTimeout = 5 * time.Second

// Publisher sends PopularityRecorded events to a durable queue.  Each
// publish dials its own connection, so a broker outage never leaves a
// broken channel behind.
type Publisher struct {
	url   string
	queue string
	log   logrus.FieldLogger
}

func NewPublisher(url, queue string, log logrus.FieldLogger) *Publisher {
	return &Publisher{url: url, queue: queue, log: log}
}

// dialTimeout returns what is left of ctx's deadline, capped at
// defaultDialTimeout.
func dialTimeout(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d < defaultDialTimeout {
			return d
		}
	}
	return defaultDialTimeout
}

// PublishPopularity publishes ev as a persistent JSON message.  The dial
// and handshake share ctx's deadline.  Errors are returned, not logged;
// the caller decides how loud a lost event is.
func (p *Publisher) PublishPopularity(ctx context.Context, ev PopularityRecorded) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "rabbitmq: publish")
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout(ctx))})
	if err != nil {
		return errors.Wrap(err, "rabbitmq: dial")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "rabbitmq: channel open")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "rabbitmq: queue declare")
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "rabbitmq: marshal")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errors.Wrap(err, "rabbitmq: publish")
	}
	p.log.WithFields(logrus.Fields{"queue": p.queue, "kind": ev.Kind, "entity_id": ev.EntityID}).
		Debug("popularity event published")
	return nil
}
