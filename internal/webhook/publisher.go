package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// ImportEvent - событие о завершении фонового импорта выгрузки
type ImportEvent struct {
	JobID     string    `json:"job_id"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Accepted  int       `json:"accepted"`
	Rejected  int       `json:"rejected"`
	Inserted  int       `json:"inserted"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event ImportEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event ImportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ImportEvent) error {
	return nil
}
