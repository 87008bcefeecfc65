package audit

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_ops_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker забирает события из очереди, пишет их в журнал и пересылает на вебхук
type Worker struct {
	redisClient *redis.Client
	sink        Sink
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, sink Sink, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		sink:        sink,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди аудита
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting audit worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping audit worker.")
				return
			default:
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, QueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop audit event from Redis")
					sleep(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				if err := w.process(ctx, result[1]); err != nil {
					w.logger.WithError(err).Error("Failed to process audit event")
				}
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, payload string) error {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return fmt.Errorf("failed to unmarshal audit event: %w", err)
	}
	log := w.logger.WithFields(logrus.Fields{
		"event_id":  event.ID,
		"action":    event.Action,
		"target":    event.Target,
		"target_id": event.TargetID,
	})

	if _, err := w.sink.AppendAuditEntry(ctx, event.Entry()); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	log.Debug("Audit entry stored")

	if w.cfg.WebhookURL == "" {
		return nil
	}
	return w.deliver(ctx, log, event.ID, payload)
}

// deliver отправляет событие на вебхук с экспоненциальной задержкой между попытками
func (w *Worker) deliver(ctx context.Context, log *logrus.Entry, eventID, rawPayload string) error {
	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			return fmt.Errorf("failed to create webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Event-ID", eventID)

		// Добавляем HMAC подпись, если секрет задан
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				log.Info("Audit webhook delivered successfully.")
				return nil
			}
			err = fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}
		if i == maxRetries-1 {
			break
		}
		log.WithError(err).Warnf("Audit webhook delivery failed. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		if !sleep(ctx, baseDelay) {
			return ctx.Err()
		}
		baseDelay *= 2
	}
	return fmt.Errorf("failed to deliver audit webhook after %d attempts", maxRetries)
}

// sleep ждет d или отмены контекста; false означает отмену
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
