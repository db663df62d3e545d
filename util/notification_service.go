// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

type NotificationService struct {
	// Dependencies such as a message queue client would live here
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifySubscriberChange(ctx context.Context, changeType string, sub model.Subscriber) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New subscriber created",
			zap.String("subscriberID", sub.ID),
			zap.Int64("expirationTimestamp", sub.ExpirationTimestamp))
	case "updated":
		logger.Info("NOTIFICATION: Subscriber updated",
			zap.String("subscriberID", sub.ID),
			zap.Int64("expirationTimestamp", sub.ExpirationTimestamp))
	case "deleted":
		logger.Info("NOTIFICATION: Subscriber deleted",
			zap.String("subscriberID", sub.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
