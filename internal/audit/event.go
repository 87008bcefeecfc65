// Package audit - канал событий аудита: изменения записей публикуются
// после успешной мутации и не влияют на ее результат.
package audit

import (
	"context"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// SystemActor - пользователь по умолчанию, если в контексте нет другого
const SystemActor = "system"

// Действия журнала
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLock   = "lock"
	ActionAssign = "assign"
)

// Event - событие аудита
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"user_id"`
	Action    string         `json:"action"`
	Target    string         `json:"target"`
	TargetID  string         `json:"target_id"`
	Details   map[string]any `json:"details,omitempty"`
}

// Entry переводит событие в запись журнала; id записи выдает хранилище
func (e Event) Entry() models.AuditLogEntry {
	return models.AuditLogEntry{
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
		Action:    e.Action,
		Target:    e.Target,
		TargetID:  e.TargetID,
		Details:   e.Details,
	}
}

// Publisher - интерфейс для публикации событий аудита
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Sink - получатель записей журнала (хранилище)
type Sink interface {
	AppendAuditEntry(ctx context.Context, entry models.AuditLogEntry) (models.AuditLogEntry, error)
}

// StoreSink пишет события прямо в журнал хранилища
type StoreSink struct {
	sink Sink
}

func NewStoreSink(sink Sink) *StoreSink {
	return &StoreSink{sink: sink}
}

func (s *StoreSink) Publish(ctx context.Context, event Event) error {
	_, err := s.sink.AppendAuditEntry(ctx, event.Entry())
	return err
}

type actorKey struct{}

// WithActor кладет id пользователя в контекст
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext возвращает id пользователя из контекста или SystemActor
func ActorFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(actorKey{}).(string); ok && userID != "" {
		return userID
	}
	return SystemActor
}
