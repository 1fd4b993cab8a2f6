// Package amqp carries recalculation requests over RabbitMQ. A request asks
// the worker to rebuild one user's derived data from the session ledger.
package amqp

import (
	"time"

	"github.com/google/uuid"
)

// RecalcRequest is the JSON body of a queue message.
type RecalcRequest struct {
	UserID      uuid.UUID `json:"userId"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requestedAt"`
}
