package store

import (
	"context"
	"sort"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// AppendAuditEntry добавляет запись в журнал действий
func (s *Store) AppendAuditEntry(ctx context.Context, entry models.AuditLogEntry) (models.AuditLogEntry, error) {
	if err := s.simulate(ctx); err != nil {
		return models.AuditLogEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = entry.Clone()
	if entry.ID == "" {
		entry.ID = s.newID("log")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.nowFn()
	}
	s.auditLog = append(s.auditLog, entry.Clone())
	return entry, nil
}

// ListAuditLog возвращает записи журнала, сначала новые
func (s *Store) ListAuditLog(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLogEntry, 0, len(s.auditLog))
	for _, e := range s.auditLog {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.Target != "" && e.Target != filter.Target {
			continue
		}
		if filter.TargetID != "" && e.TargetID != filter.TargetID {
			continue
		}
		out = append(out, e.Clone())
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) AddNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Notification{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.newID("notif")
	if n.Timestamp.IsZero() {
		n.Timestamp = s.nowFn()
	}
	if n.Type == "" {
		n.Type = models.NotificationInfo
	}
	s.notifications = append(s.notifications, n)
	return n, nil
}

// ListNotifications возвращает уведомления, сначала новые
func (s *Store) ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id string) (models.Notification, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Notification{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.notifications, id, func(n models.Notification) string { return n.ID })
	if i < 0 {
		return models.Notification{}, notFound("Notification", id)
	}
	s.notifications[i].Read = true
	return s.notifications[i], nil
}

