// dao/subscriber_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/edgegate-io/tunnelgate/audit"
	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

type SubscriberDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewSubscriberDAO(db *gorm.DB, auditService audit.Service) *SubscriberDAO {
	return &SubscriberDAO{DB: db, AuditService: auditService}
}

// GetSubscriber fetches a record by id. Absence is reported as
// ErrSubscriberNotFound; any other failure is a store error.
func (dao *SubscriberDAO) GetSubscriber(ctx context.Context, id string) (*model.Subscriber, error) {
	var sub model.Subscriber
	err := dao.DB.WithContext(ctx).First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gateway_errors.ErrSubscriberNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch subscriber", zap.Error(err), zap.String("subscriberID", id))
		return nil, gateway_errors.ErrDatabaseOperation
	}
	return &sub, nil
}

// UpsertSubscriber inserts a new record or updates an existing one in
// place. An empty id gets a freshly generated one; created_at is set only
// on insert. The status snapshot is expected to be computed by the caller
// at write time.
func (dao *SubscriberDAO) UpsertSubscriber(ctx context.Context, sub model.Subscriber) (*model.Subscriber, error) {
	start := time.Now()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	action := "subscriber.updated"
	var existing model.Subscriber
	err := dao.DB.WithContext(ctx).First(&existing, "id = ?", sub.ID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		action = "subscriber.created"
		sub.CreatedAt = time.Now().Unix()
		if err := dao.DB.WithContext(ctx).Create(&sub).Error; err != nil {
			logger.Error("Failed to create subscriber",
				zap.Error(err),
				zap.String("subscriberID", sub.ID),
				zap.Duration("duration", time.Since(start)))
			return nil, gateway_errors.ErrDatabaseOperation
		}
	case err != nil:
		logger.Error("Failed to look up subscriber for upsert", zap.Error(err), zap.String("subscriberID", sub.ID))
		return nil, gateway_errors.ErrDatabaseOperation
	default:
		sub.CreatedAt = existing.CreatedAt
		updates := map[string]interface{}{
			"expiration_timestamp": sub.ExpirationTimestamp,
			"status":               sub.Status,
			"notes":                sub.Notes,
		}
		if err := dao.DB.WithContext(ctx).Model(&model.Subscriber{}).Where("id = ?", sub.ID).Updates(updates).Error; err != nil {
			logger.Error("Failed to update subscriber",
				zap.Error(err),
				zap.String("subscriberID", sub.ID),
				zap.Duration("duration", time.Since(start)))
			return nil, gateway_errors.ErrDatabaseOperation
		}
	}

	logger.Info("Subscriber upserted successfully",
		zap.String("subscriberID", sub.ID),
		zap.String("action", action),
		zap.Duration("duration", time.Since(start)))

	dao.logAudit(ctx, action, &sub)
	return &sub, nil
}

// DeleteSubscriber removes a record. Deleting an id that does not exist
// is a no-op success.
func (dao *SubscriberDAO) DeleteSubscriber(ctx context.Context, id string) error {
	if err := dao.DB.WithContext(ctx).Delete(&model.Subscriber{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete subscriber", zap.Error(err), zap.String("subscriberID", id))
		return gateway_errors.ErrDatabaseOperation
	}

	logger.Info("Subscriber deleted", zap.String("subscriberID", id))
	dao.logAudit(ctx, "subscriber.deleted", &model.Subscriber{ID: id})
	return nil
}

// ListSubscribers returns every record, newest first.
func (dao *SubscriberDAO) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	var subs []*model.Subscriber
	err := dao.DB.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		logger.Error("Failed to list subscribers", zap.Error(err))
		return nil, gateway_errors.ErrDatabaseOperation
	}
	return subs, nil
}

// logAudit records the mutation in the audit trail. The trail is best
// effort: an indexing failure must not fail the mutation it describes.
func (dao *SubscriberDAO) logAudit(ctx context.Context, action string, sub *model.Subscriber) {
	if dao.AuditService == nil {
		return
	}

	details, _ := json.Marshal(sub)
	auditLog := audit.AuditLog{
		Timestamp:     time.Now(),
		SubscriberID:  sub.ID,
		Action:        action,
		ChangeDetails: details,
	}
	if err := dao.AuditService.LogChange(ctx, auditLog); err != nil {
		logger.Warn("Failed to write audit log",
			zap.Error(err),
			zap.String("subscriberID", sub.ID),
			zap.String("action", action))
	}
}
