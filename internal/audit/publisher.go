package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// QueueKey - список Redis с событиями аудита
	QueueKey = "audit_events"
)

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, QueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish audit event to Redis: %w", err)
	}
	return nil
}
