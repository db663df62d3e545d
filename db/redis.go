// db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func decisionKey(subscriberID string) string {
	return fmt.Sprintf("user:%s", subscriberID)
}

// CacheDecision stores an admission decision for a subscriber with the
// given TTL. The TTL for a valid decision must never exceed the
// subscriber's remaining authorized time; callers own that invariant.
func CacheDecision(ctx context.Context, subscriberID string, decision model.Decision, ttl time.Duration) error {
	err := RedisClient.Set(ctx, decisionKey(subscriberID), string(decision), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache decision: %w", err)
	}

	logger.Debug("Decision cached successfully",
		zap.String("subscriberID", subscriberID),
		zap.String("decision", string(decision)),
		zap.Duration("ttl", ttl))
	return nil
}

// GetCachedDecision returns the cached decision for a subscriber, or the
// empty decision when no entry exists.
func GetCachedDecision(ctx context.Context, subscriberID string) (model.Decision, error) {
	val, err := RedisClient.Get(ctx, decisionKey(subscriberID)).Result()
	if err == redis.Nil {
		logger.Debug("Decision not found in cache", zap.String("subscriberID", subscriberID))
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to get decision from cache: %w", err)
	}

	logger.Debug("Decision retrieved from cache",
		zap.String("subscriberID", subscriberID),
		zap.String("decision", val))
	return model.Decision(val), nil
}

// DeleteCachedDecision removes the decision entry for a subscriber so the
// next admission check re-reads the record store.
func DeleteCachedDecision(ctx context.Context, subscriberID string) error {
	err := RedisClient.Del(ctx, decisionKey(subscriberID)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete decision from cache: %w", err)
	}
	logger.Debug("Decision deleted from cache", zap.String("subscriberID", subscriberID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
