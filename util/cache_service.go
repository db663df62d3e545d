// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/edgegate-io/tunnelgate/db"
	"github.com/edgegate-io/tunnelgate/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetDecision(ctx context.Context, subscriberID string) (model.Decision, error) {
	return db.GetCachedDecision(ctx, subscriberID)
}

func (c *CacheService) SetDecision(ctx context.Context, subscriberID string, decision model.Decision, ttl time.Duration) error {
	return db.CacheDecision(ctx, subscriberID, decision, ttl)
}

func (c *CacheService) DeleteDecision(ctx context.Context, subscriberID string) error {
	return db.DeleteCachedDecision(ctx, subscriberID)
}
