package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	// ErrConflict - нарушение уникальности, которое хранилище не проверяет (серийный номер, номер участка)
	ErrConflict = errors.New("conflict")
	// ErrValidation - некорректные входные данные
	ErrValidation = errors.New("validation failed")
)

// Clock - источник текущего времени (хранилище)
type Clock interface {
	Now() time.Time
}

// auditor публикует события аудита; ошибка публикации только логируется
type auditor struct {
	publisher audit.Publisher
	clock     Clock
	logger    *logrus.Logger
}

func (a auditor) record(ctx context.Context, action, target, targetID string, details map[string]any) {
	if a.publisher == nil {
		return
	}
	event := audit.Event{
		ID:        uuid.NewString(),
		Timestamp: a.clock.Now(),
		UserID:    audit.ActorFromContext(ctx),
		Action:    action,
		Target:    target,
		TargetID:  targetID,
		Details:   details,
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.WithFields(logrus.Fields{
			"action":    action,
			"target":    target,
			"target_id": targetID,
		}).WithError(err).Warn("Failed to publish audit event")
	}
}

// notFound - ошибка отсутствующей записи для Get-методов
func notFound(entity, id string) error {
	return &store.NotFoundError{Entity: entity, ID: id}
}
