// service/admission_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

// IAdmissionService is the gate every tunnel request passes before being
// handed to the tunnel collaborator.
type IAdmissionService interface {
	IsAuthorized(ctx context.Context, subscriberID string) bool
}

// AdmissionService decides tunnel admission cache-aside: the decision
// cache is consulted first, the record store only on a miss, and the
// resulting decision is cached with a TTL bounded by the subscription's
// remaining authorized time.
type AdmissionService struct {
	cache       DecisionCache
	store       RecordStore
	negativeTTL time.Duration
	minTTL      time.Duration
}

var _ IAdmissionService = &AdmissionService{}

// NewAdmissionService creates a new instance of AdmissionService.
// negativeTTL bounds how long a denial for an absent or expired record is
// cached; minTTL is the floor for a valid entry so a subscription about
// to expire still caches for a usable interval.
func NewAdmissionService(cache DecisionCache, store RecordStore, negativeTTL, minTTL time.Duration) *AdmissionService {
	return &AdmissionService{
		cache:       cache,
		store:       store,
		negativeTTL: negativeTTL,
		minTTL:      minTTL,
	}
}

// IsAuthorized reports whether the subscriber may enter the tunnel.
//
// A store failure yields false without writing a cache entry: a denial
// caused by an outage must not outlive the outage. Only genuine absence
// or expiry is cached as invalid.
func (s *AdmissionService) IsAuthorized(ctx context.Context, subscriberID string) bool {
	cached, err := s.cache.GetDecision(ctx, subscriberID)
	if err != nil {
		// A cache outage degrades to a store round-trip per request.
		logger.Warn("Decision cache lookup failed",
			zap.Error(err),
			zap.String("subscriberID", subscriberID))
	} else if cached != "" {
		return cached == model.DecisionValid
	}

	sub, err := s.store.GetSubscriber(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, gateway_errors.ErrSubscriberNotFound) {
			s.cacheDecision(ctx, subscriberID, model.DecisionInvalid, s.negativeTTL)
			return false
		}
		logger.Error("Record store unavailable during admission, failing closed",
			zap.Error(err),
			zap.String("subscriberID", subscriberID))
		return false
	}

	now := time.Now()
	if !sub.Live(now) {
		s.cacheDecision(ctx, subscriberID, model.DecisionInvalid, s.negativeTTL)
		return false
	}

	remaining := time.Duration(sub.ExpirationTimestamp-now.Unix()) * time.Second
	if remaining < s.minTTL {
		remaining = s.minTTL
	}
	s.cacheDecision(ctx, subscriberID, model.DecisionValid, remaining)
	return true
}

// cacheDecision writes the decision best effort; the decision itself is
// already made and a cache write failure must not change it.
func (s *AdmissionService) cacheDecision(ctx context.Context, subscriberID string, decision model.Decision, ttl time.Duration) {
	if err := s.cache.SetDecision(ctx, subscriberID, decision, ttl); err != nil {
		logger.Warn("Failed to cache admission decision",
			zap.Error(err),
			zap.String("subscriberID", subscriberID),
			zap.String("decision", string(decision)))
	}
}
