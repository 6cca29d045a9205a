package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_risk_advisor/internal/config"
	"github.com/sirupsen/logrus"
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			// BRPOP блокируется до появления события, 0 - без таймаута
			result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				_ = sleepWithContext(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event ImportEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
				continue
			}

			w.processWebhookEvent(ctx, event, payload)
		}
	}()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event ImportEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_job_id": event.JobID,
		"event_status": event.Status,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	if err := w.deliver(ctx, rawPayload); err != nil {
		log.WithError(err).Error("Failed to deliver webhook")
		return
	}
	log.Info("Webhook delivered successfully.")
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			w.logger.WithError(lastErr).Warnf("Retrying webhook in %v. Retries left: %d", delay, maxRetries-i)
			if err := sleepWithContext(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}

		lastErr = w.send(ctx, rawPayload)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", maxRetries, lastErr)
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись HMAC, если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
