package queue

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Consumer drains the popularity queue and appends every event as one
// JSON line to the audit log.
type Consumer struct {
	url   string
	queue string
	audit *logrus.Logger
	log   logrus.FieldLogger
}

// NewConsumer writes audit lines to w.
func NewConsumer(url, queue string, w io.Writer, log logrus.FieldLogger) *Consumer {
	audit := logrus.New()
	audit.SetOutput(w)
	audit.SetFormatter(&logrus.JSONFormatter{})
	return &Consumer{url: url, queue: queue, audit: audit, log: log}
}

// OpenAuditLog opens path for appending, creating its directory.
func OpenAuditLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "mkdir audit log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open audit log")
	}
	return f, nil
}

// Run keeps a consumer attached to the broker, reconnecting with
// exponential backoff, until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.WithError(err).Warnf("popularity-consumer: dial failed; retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return nil
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil
		}
		c.log.WithError(err).Warn("popularity-consumer: consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.WithError(err).Warn("popularity-consumer: set QoS failed")
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "queue declare")
	}
	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "queue consume")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handleMessage(d.Body); err != nil {
				c.log.WithError(err).Warn("popularity-consumer: handle message failed")
				_ = d.Nack(false, false) // do not requeue malformed messages
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleMessage(body []byte) error {
	var ev PopularityRecorded
	if err := json.Unmarshal(body, &ev); err != nil {
		return errors.Wrap(err, "unmarshal")
	}
	if ev.Kind == "" || ev.EntityID <= 0 {
		return errors.Errorf("incomplete event: kind=%q entity_id=%d", ev.Kind, ev.EntityID)
	}
	c.audit.WithFields(logrus.Fields{
		"kind":        ev.Kind,
		"entity_id":   ev.EntityID,
		"dimension":   ev.Dimension,
		"score":       ev.Score,
		"recorded_at": ev.RecordedAt.UTC().Format(time.RFC3339),
	}).Info("popularity recorded")
	return nil
}
