// Package events publishes score.computed notifications to NATS after a
// successful scoring call, mirroring framework/node/nats_client.go's
// connect/publish wrapper.
package events

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"

	"riichiscore/internal/logging"
	"riichiscore/internal/mahjong"
)

// ErrNotConnected is returned by Publish when the connection has not
// been established or was closed.
var ErrNotConnected = errors.New("events: nats connection not established")

// Publisher announces completed scoring calls on a single subject.
type Publisher struct {
	subject string
	conn    *nats.Conn
}

// Connect dials url and returns a Publisher that announces on subject.
func Connect(url, subject string) (*Publisher, error) {
	logging.Info("connecting to nats, url: %s", url)
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	logging.Info("nats connected, url: %s", url)
	return &Publisher{subject: subject, conn: conn}, nil
}

// ScoreComputed is the payload published after a successful scoring call.
type ScoreComputed struct {
	ClientID string               `json:"clientID"`
	Result   *mahjong.ScoreResult `json:"result"`
	ScoredAt time.Time            `json:"scoredAt"`
}

// Publish announces a completed scoring call.
func (p *Publisher) Publish(evt ScoreComputed) error {
	if p == nil || p.conn == nil || !p.conn.IsConnected() {
		return ErrNotConnected
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, b)
}

// Close releases the underlying connection.
func (p *Publisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	p.conn.Close()
	logging.Info("nats connection closed")
	return nil
}
