// Package events announces completed analysis runs on the message bus so
// downstream consumers (dashboards, alerting) can refresh without polling.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"reddit-pulse/internal/model"
)

// Publisher emits run-completed events to NATS. A nil Publisher is valid
// and publishes nothing, so event delivery stays optional.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

func NewPublisher(conn *nats.Conn, subject string) *Publisher {
	return &Publisher{conn: conn, subject: subject}
}

// RunCompleted publishes a compact summary of a finished run.
func (p *Publisher) RunCompleted(res *model.Result) error {
	if p == nil || p.conn == nil {
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"run_id":       res.RunID,
		"source":       res.Source,
		"generated_at": res.GeneratedAt.Format(time.RFC3339),
		"posts":        len(res.Enriched),
		"topics":       len(res.Topics),
		"days":         len(res.Daily),
	})
	if err != nil {
		return err
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish run event: %w", err)
	}
	return nil
}
