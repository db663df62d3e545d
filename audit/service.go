// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogChange(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, subscriberID string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogChange(ctx context.Context, log AuditLog) error {
	return s.repo.LogChange(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, subscriberID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, subscriberID)
}
