package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service"
)

const layoutKeyPrefix = "dashboard_layout:"

func layoutKey(userID string) string {
	return layoutKeyPrefix + userID
}

// RedisLayoutRepository хранит раскладки панелей в Redis без срока жизни
type RedisLayoutRepository struct {
	redisClient *redis.Client
}

func NewRedisLayoutRepository(redisClient *redis.Client) service.LayoutRepository {
	return &RedisLayoutRepository{redisClient: redisClient}
}

// Get возвращает раскладку пользователя. Отсутствующее или битое значение дает false без ошибки.
func (r *RedisLayoutRepository) Get(ctx context.Context, userID string) (models.DashboardLayout, bool, error) {
	val, err := r.redisClient.Get(ctx, layoutKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DashboardLayout{}, false, nil
		}
		return models.DashboardLayout{}, false, fmt.Errorf("failed to get layout from redis: %w", err)
	}
	layout, ok := decodeLayout(val)
	return layout, ok, nil
}

func (r *RedisLayoutRepository) Save(ctx context.Context, userID string, layout models.DashboardLayout) error {
	val, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := r.redisClient.Set(ctx, layoutKey(userID), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save layout to redis: %w", err)
	}
	return nil
}

func (r *RedisLayoutRepository) Delete(ctx context.Context, userID string) error {
	if err := r.redisClient.Del(ctx, layoutKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete layout from redis: %w", err)
	}
	return nil
}

// decodeLayout требует, чтобы оба поля были массивами строк
func decodeLayout(val []byte) (models.DashboardLayout, bool) {
	var raw struct {
		WidgetOrder   *[]string `json:"widgetOrder"`
		HiddenWidgets *[]string `json:"hiddenWidgets"`
	}
	if err := json.Unmarshal(val, &raw); err != nil {
		return models.DashboardLayout{}, false
	}
	if raw.WidgetOrder == nil || raw.HiddenWidgets == nil {
		return models.DashboardLayout{}, false
	}
	return models.DashboardLayout{
		WidgetOrder:   *raw.WidgetOrder,
		HiddenWidgets: *raw.HiddenWidgets,
	}, true
}

// MemoryLayoutRepository - раскладки в памяти процесса, когда Redis не настроен
type MemoryLayoutRepository struct {
	mu      sync.RWMutex
	layouts map[string]models.DashboardLayout
}

func NewMemoryLayoutRepository() service.LayoutRepository {
	return &MemoryLayoutRepository{layouts: make(map[string]models.DashboardLayout)}
}

func (r *MemoryLayoutRepository) Get(ctx context.Context, userID string) (models.DashboardLayout, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	layout, ok := r.layouts[userID]
	if !ok {
		return models.DashboardLayout{}, false, nil
	}
	return cloneLayout(layout), true, nil
}

func (r *MemoryLayoutRepository) Save(ctx context.Context, userID string, layout models.DashboardLayout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.layouts[userID] = cloneLayout(layout)
	return nil
}

func (r *MemoryLayoutRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.layouts, userID)
	return nil
}

func cloneLayout(l models.DashboardLayout) models.DashboardLayout {
	return models.DashboardLayout{
		WidgetOrder:   append([]string{}, l.WidgetOrder...),
		HiddenWidgets: append([]string{}, l.HiddenWidgets...),
	}
}
