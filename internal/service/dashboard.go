package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type DashboardRepository interface {
	Clock
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error)
	ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error)
	ListApparatus(ctx context.Context, filter models.ApparatusFilter) ([]models.Apparatus, error)
	ListFireDues(ctx context.Context, filter models.FireDueFilter) ([]models.FireDue, error)
	ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	ListAuditLog(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
}

// LayoutRepository хранит раскладку панели пользователя.
// Get возвращает false, если раскладка не сохранялась или не читается.
type LayoutRepository interface {
	Get(ctx context.Context, userID string) (models.DashboardLayout, bool, error)
	Save(ctx context.Context, userID string, layout models.DashboardLayout) error
	Delete(ctx context.Context, userID string) error
}

type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	AuditLog(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
	GetLayout(ctx context.Context, userID string) (models.DashboardLayout, error)
	SaveLayout(ctx context.Context, userID string, layout models.DashboardLayout) (models.DashboardLayout, error)
	ResetLayout(ctx context.Context, userID string) (models.DashboardLayout, error)
}

type dashboardService struct {
	repo    DashboardRepository
	layouts LayoutRepository
	logger  *logrus.Logger
}

func NewDashboardService(repo DashboardRepository, layouts LayoutRepository, logger *logrus.Logger) DashboardService {
	return &dashboardService{repo: repo, layouts: layouts, logger: logger}
}

func (s *dashboardService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "dashboard", "method": method})
}

// Summary собирает счетчики для главной панели
func (s *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	log := s.log("Summary")

	open, err := s.repo.ListIncidents(ctx, models.IncidentFilter{Status: models.IncidentStatusInProgress})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		return models.DashboardSummary{}, fmt.Errorf("service: could not build summary: %w", err)
	}
	active, err := s.repo.ListPersonnel(ctx, models.PersonnelFilter{Status: models.PersonnelStatusActive})
	if err != nil {
		log.WithError(err).Error("Failed to list personnel")
		return models.DashboardSummary{}, fmt.Errorf("service: could not build summary: %w", err)
	}
	apparatus, err := s.repo.ListApparatus(ctx, models.ApparatusFilter{Status: models.ApparatusStatusInService})
	if err != nil {
		log.WithError(err).Error("Failed to list apparatus")
		return models.DashboardSummary{}, fmt.Errorf("service: could not build summary: %w", err)
	}
	dues, err := s.repo.ListFireDues(ctx, models.FireDueFilter{})
	if err != nil {
		log.WithError(err).Error("Failed to list fire dues")
		return models.DashboardSummary{}, fmt.Errorf("service: could not build summary: %w", err)
	}
	unread, err := s.repo.ListNotifications(ctx, true)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications")
		return models.DashboardSummary{}, fmt.Errorf("service: could not build summary: %w", err)
	}

	return models.DashboardSummary{
		OpenIncidents:      len(open),
		ActivePersonnel:    len(active),
		ApparatusInService: len(apparatus),
		FireDues:           analytics.FireDuesSummary(dues, s.repo.Now()),
		UnreadAlerts:       len(unread),
	}, nil
}

func (s *dashboardService) AuditLog(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	entries, err := s.repo.ListAuditLog(ctx, filter)
	if err != nil {
		s.log("AuditLog").WithError(err).Error("Failed to list audit log")
		return nil, fmt.Errorf("service: could not list audit log: %w", err)
	}
	return entries, nil
}

// GetLayout возвращает сохраненную раскладку или раскладку по умолчанию
func (s *dashboardService) GetLayout(ctx context.Context, userID string) (models.DashboardLayout, error) {
	layout, ok, err := s.layouts.Get(ctx, userID)
	if err != nil {
		s.log("GetLayout").WithField("user_id", userID).WithError(err).Warn("Failed to read layout, using default")
		return models.DefaultDashboardLayout(), nil
	}
	if !ok {
		return models.DefaultDashboardLayout(), nil
	}
	return layout, nil
}

func (s *dashboardService) SaveLayout(ctx context.Context, userID string, layout models.DashboardLayout) (models.DashboardLayout, error) {
	if err := validateLayout(layout); err != nil {
		return models.DashboardLayout{}, err
	}
	if layout.HiddenWidgets == nil {
		layout.HiddenWidgets = []string{}
	}
	if err := s.layouts.Save(ctx, userID, layout); err != nil {
		s.log("SaveLayout").WithField("user_id", userID).WithError(err).Error("Failed to save layout")
		return models.DashboardLayout{}, fmt.Errorf("service: could not save layout: %w", err)
	}
	return layout, nil
}

func (s *dashboardService) ResetLayout(ctx context.Context, userID string) (models.DashboardLayout, error) {
	if err := s.layouts.Delete(ctx, userID); err != nil {
		s.log("ResetLayout").WithField("user_id", userID).WithError(err).Error("Failed to reset layout")
		return models.DashboardLayout{}, fmt.Errorf("service: could not reset layout: %w", err)
	}
	return models.DefaultDashboardLayout(), nil
}

func validateLayout(layout models.DashboardLayout) error {
	known := make(map[string]bool)
	for _, w := range models.DefaultDashboardLayout().WidgetOrder {
		known[w] = true
	}
	check := func(field string, widgets []string) error {
		seen := make(map[string]bool, len(widgets))
		for _, w := range widgets {
			if !known[w] {
				return fmt.Errorf("%w: unknown widget %q in %s", ErrValidation, w, field)
			}
			if seen[w] {
				return fmt.Errorf("%w: duplicate widget %q in %s", ErrValidation, w, field)
			}
			seen[w] = true
		}
		return nil
	}
	if len(layout.WidgetOrder) == 0 {
		return fmt.Errorf("%w: widget order is empty", ErrValidation)
	}
	if err := check("widgetOrder", layout.WidgetOrder); err != nil {
		return err
	}
	return check("hiddenWidgets", layout.HiddenWidgets)
}
