// Package queue carries popularity events over RabbitMQ: the payload, the
// publisher used by the services and the consumer that keeps the audit log.
package queue

import "time"

// Kinds of popularity writes.
const (
	KindCategory = "category"
	KindProduct  = "product"
	KindTrend    = "trend"
)

// PopularityRecorded is published after every successful popularity write.
// Dimension is the season for categories, the trend id for products and
// "current" for trends.
type PopularityRecorded struct {
	Kind       string    `json:"kind"`
	EntityID   int64     `json:"entity_id"`
	Dimension  string    `json:"dimension"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}
