// service/admission_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
	"github.com/edgegate-io/tunnelgate/service"
	mock_store "github.com/edgegate-io/tunnelgate/test/store_mock"
)

const (
	testSubscriberID = "d342d11e-d424-4583-b36e-524ab1f0afa4"
	negativeTTL      = time.Hour
	minTTL           = time.Minute
)

func TestAdmissionService(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	ctx := context.Background()

	newService := func(t *testing.T) (*service.AdmissionService, *mock_store.MockDecisionCache, *mock_store.MockRecordStore) {
		ctrl := gomock.NewController(t)
		cache := mock_store.NewMockDecisionCache(ctrl)
		store := mock_store.NewMockRecordStore(ctrl)
		return service.NewAdmissionService(cache, store, negativeTTL, minTTL), cache, store
	}

	t.Run("CacheHit_Valid_SkipsStore", func(t *testing.T) {
		svc, cache, _ := newService(t)
		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.DecisionValid, nil)

		// No store expectation: a cached decision must not touch the store.
		assert.True(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("CacheHit_Invalid_SkipsStore", func(t *testing.T) {
		svc, cache, _ := newService(t)
		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.DecisionInvalid, nil)

		assert.False(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("Miss_LiveRecord_CachesValidWithRemainingTime", func(t *testing.T) {
		svc, cache, store := newService(t)
		exp := time.Now().Add(2 * time.Hour).Unix()

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: exp,
				Status:              model.StatusActive,
			}, nil)

		var gotTTL time.Duration
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionValid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Decision, ttl time.Duration) error {
				gotTTL = ttl
				return nil
			})

		assert.True(t, svc.IsAuthorized(ctx, testSubscriberID))
		// The TTL tracks the remaining subscription time, give or take the
		// seconds elapsed inside the call.
		assert.Greater(t, gotTTL, 2*time.Hour-10*time.Second)
		assert.LessOrEqual(t, gotTTL, 2*time.Hour)
	})

	t.Run("Miss_NearExpiry_TTLFloorsAtMinimum", func(t *testing.T) {
		svc, cache, store := newService(t)
		exp := time.Now().Add(10 * time.Second).Unix()

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: exp,
				Status:              model.StatusActive,
			}, nil)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionValid, minTTL).
			Return(nil)

		assert.True(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("Miss_AbsentRecord_CachesInvalid", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(nil, gateway_errors.ErrSubscriberNotFound)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionInvalid, negativeTTL).
			Return(nil)

		assert.False(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("Miss_ExpiredRecord_CachesInvalid", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: time.Now().Add(-time.Hour).Unix(),
				Status:              model.StatusExpired,
			}, nil)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionInvalid, negativeTTL).
			Return(nil)

		assert.False(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("Miss_InactiveStatusWithFutureExpiry_Denied", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: time.Now().Add(time.Hour).Unix(),
				Status:              model.StatusExpired,
			}, nil)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionInvalid, negativeTTL).
			Return(nil)

		assert.False(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("StoreOutage_FailsClosedWithoutCaching", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(nil, gateway_errors.ErrDatabaseOperation)

		// No SetDecision expectation: an outage-driven denial must not
		// outlive the outage by being cached.
		assert.False(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("CacheReadFailure_DegradesToStore", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), errors.New("redis: connection refused"))
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: time.Now().Add(time.Hour).Unix(),
				Status:              model.StatusActive,
			}, nil)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionValid, gomock.Any()).
			Return(nil)

		assert.True(t, svc.IsAuthorized(ctx, testSubscriberID))
	})

	t.Run("CacheWriteFailure_DoesNotChangeDecision", func(t *testing.T) {
		svc, cache, store := newService(t)

		cache.EXPECT().
			GetDecision(gomock.Any(), testSubscriberID).
			Return(model.Decision(""), nil)
		store.EXPECT().
			GetSubscriber(gomock.Any(), testSubscriberID).
			Return(&model.Subscriber{
				ID:                  testSubscriberID,
				ExpirationTimestamp: time.Now().Add(time.Hour).Unix(),
				Status:              model.StatusActive,
			}, nil)
		cache.EXPECT().
			SetDecision(gomock.Any(), testSubscriberID, model.DecisionValid, gomock.Any()).
			Return(errors.New("redis: connection refused"))

		assert.True(t, svc.IsAuthorized(ctx, testSubscriberID))
	})
}
