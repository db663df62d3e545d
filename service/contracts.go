// service/contracts.go
package service

import (
	"context"
	"time"

	"github.com/edgegate-io/tunnelgate/model"
)

// RecordStore is the durable store of subscriber records. Absence is
// reported as errors.ErrSubscriberNotFound; any other error is a store
// failure and is treated as indeterminate by the admission gate.
type RecordStore interface {
	GetSubscriber(ctx context.Context, id string) (*model.Subscriber, error)
	UpsertSubscriber(ctx context.Context, sub model.Subscriber) (*model.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}

// DecisionCache is the expiring key-value cache of admission decisions.
// GetDecision returns the empty decision when no entry exists.
type DecisionCache interface {
	GetDecision(ctx context.Context, subscriberID string) (model.Decision, error)
	SetDecision(ctx context.Context, subscriberID string, decision model.Decision, ttl time.Duration) error
	DeleteDecision(ctx context.Context, subscriberID string) error
}
