// service/subscriber_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
	"github.com/edgegate-io/tunnelgate/util"
)

// ISubscriberService defines the interface for admin subscriber operations
type ISubscriberService interface {
	UpsertSubscriber(ctx context.Context, req model.UpsertSubscriberRequest) (*model.Subscriber, error)
	DeleteSubscriber(ctx context.Context, subscriberID string) error
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}

// SubscriberService handles business logic for subscriber records.
// Every mutation deletes the subscriber's decision cache entry before
// returning, so the next admission check re-reads the record store.
type SubscriberService struct {
	store           RecordStore
	cache           DecisionCache
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ISubscriberService = &SubscriberService{}

// NewSubscriberService creates a new instance of SubscriberService
func NewSubscriberService(store RecordStore, cache DecisionCache, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *SubscriberService {
	service := &SubscriberService{
		store:           store,
		cache:           cache,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("subscriber.upserted", service.handleSubscriberUpserted)
	eventBus.Subscribe("subscriber.deleted", service.handleSubscriberDeleted)

	return service
}

func (s *SubscriberService) handleSubscriberUpserted(ctx context.Context, event util.Event) error {
	sub := event.Payload.(model.Subscriber)
	logger.Info("Subscriber upserted event received", zap.String("subscriberID", sub.ID))

	if err := s.notificationSvc.NotifySubscriberChange(ctx, "updated", sub); err != nil {
		logger.Warn("Failed to send subscriber change notification", zap.Error(err), zap.String("subscriberID", sub.ID))
	}

	return nil
}

func (s *SubscriberService) handleSubscriberDeleted(ctx context.Context, event util.Event) error {
	subscriberID := event.Payload.(string)
	logger.Info("Subscriber deleted event received", zap.String("subscriberID", subscriberID))

	if err := s.notificationSvc.NotifySubscriberChange(ctx, "deleted", model.Subscriber{ID: subscriberID}); err != nil {
		logger.Warn("Failed to send subscriber deletion notification", zap.Error(err), zap.String("subscriberID", subscriberID))
	}

	return nil
}

// UpsertSubscriber creates or updates a record. The status snapshot is
// computed here against the write-time clock; an empty id is filled in by
// the store.
func (s *SubscriberService) UpsertSubscriber(ctx context.Context, req model.UpsertSubscriberRequest) (*model.Subscriber, error) {
	if err := s.validationUtil.ValidateUpsertRequest(req); err != nil {
		return nil, fmt.Errorf("invalid subscriber: %w", err)
	}

	sub := model.Subscriber{
		ID:                  req.ID,
		ExpirationTimestamp: req.ExpirationTimestamp,
		Status:              model.StatusAt(req.ExpirationTimestamp, time.Now()),
		Notes:               req.Notes,
	}

	stored, err := s.store.UpsertSubscriber(ctx, sub)
	if err != nil {
		logger.Error("Error upserting subscriber", zap.Error(err), zap.String("subscriberID", req.ID))
		return nil, err
	}

	// The cached decision reflects the record as it was before this
	// write; drop it so the next admission check sees the new state.
	// A failed invalidation leaves staleness bounded by the entry's TTL.
	if err := s.cache.DeleteDecision(ctx, stored.ID); err != nil {
		logger.Warn("Failed to invalidate decision cache after upsert",
			zap.Error(err), zap.String("subscriberID", stored.ID))
	}

	s.eventBus.Publish(ctx, "subscriber.upserted", *stored)

	logger.Info("Subscriber upserted successfully", zap.String("subscriberID", stored.ID))
	return stored, nil
}

// DeleteSubscriber removes a record; deleting an unknown id is a no-op
// success.
func (s *SubscriberService) DeleteSubscriber(ctx context.Context, subscriberID string) error {
	if err := s.store.DeleteSubscriber(ctx, subscriberID); err != nil {
		logger.Error("Error deleting subscriber", zap.Error(err), zap.String("subscriberID", subscriberID))
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	if err := s.cache.DeleteDecision(ctx, subscriberID); err != nil {
		logger.Warn("Failed to invalidate decision cache after delete",
			zap.Error(err), zap.String("subscriberID", subscriberID))
	}

	s.eventBus.Publish(ctx, "subscriber.deleted", subscriberID)

	logger.Info("Subscriber deleted successfully", zap.String("subscriberID", subscriberID))
	return nil
}

// ListSubscribers returns every record, newest first.
func (s *SubscriberService) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	subs, err := s.store.ListSubscribers(ctx)
	if err != nil {
		logger.Error("Error listing subscribers", zap.Error(err))
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return subs, nil
}
