package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	Clock
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error)
	GetIncident(ctx context.Context, id string) (models.Incident, bool, error)
	CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error)
	UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (models.Incident, error)
	LockIncident(ctx context.Context, id string) (models.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
}

// IncidentService определяет контракт бизнес-логики отчетов NFIRS
type IncidentService interface {
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error)
	GetIncident(ctx context.Context, id string) (models.Incident, error)
	CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error)
	UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (models.Incident, error)
	LockIncident(ctx context.Context, id string) (models.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
	GetAnalytics(ctx context.Context) (models.IncidentAnalytics, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	audit  auditor
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher audit.Publisher) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
		audit:  auditor{publisher: publisher, clock: repo, logger: logger},
	}
}

func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"type":    filter.Type,
		"status":  filter.Status,
	})
	log.Debug("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, ok, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident")
		return models.Incident{}, fmt.Errorf("service: could not get incident: %w", err)
	}
	if !ok {
		return models.Incident{}, notFound("Incident", id)
	}
	return incident, nil
}

// CreateIncident создает отчет; номер присваивается хранилищем
func (s *incidentService) CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    inc.Type,
	})
	log.Info("Attempting to create a new incident")

	created, err := s.repo.CreateIncident(ctx, inc)
	if err != nil {
		log.WithError(err).Error("Failed to create incident")
		return models.Incident{}, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.audit.record(ctx, audit.ActionCreate, "Incident", created.ID, map[string]any{
		"incident_number": created.IncidentNumber,
		"type":            created.Type,
	})
	log.WithField("incident_id", created.ID).Info("Incident created successfully")
	return created, nil
}

// UpdateIncident обновляет отчет, если он не заблокирован
func (s *incidentService) UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	updated, err := s.repo.UpdateIncident(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident")
		return models.Incident{}, fmt.Errorf("service: could not update incident: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Incident", id, map[string]any{"status": updated.Status})
	log.Info("Incident updated successfully")
	return updated, nil
}

// LockIncident блокирует отчет от дальнейших изменений
func (s *incidentService) LockIncident(ctx context.Context, id string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "LockIncident",
		"incident_id": id,
	})
	log.Info("Attempting to lock incident")

	locked, err := s.repo.LockIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to lock incident")
		return models.Incident{}, fmt.Errorf("service: could not lock incident: %w", err)
	}

	s.audit.record(ctx, audit.ActionLock, "Incident", id, map[string]any{"incident_number": locked.IncidentNumber})
	log.Info("Incident locked successfully")
	return locked, nil
}

func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.DeleteIncident(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	s.audit.record(ctx, audit.ActionDelete, "Incident", id, nil)
	log.Info("Incident deleted successfully")
	return nil
}

// GetAnalytics считает разбивку всех инцидентов
func (s *incidentService) GetAnalytics(ctx context.Context) (models.IncidentAnalytics, error) {
	incidents, err := s.repo.ListIncidents(ctx, models.IncidentFilter{})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "GetAnalytics",
		}).WithError(err).Error("Failed to list incidents")
		return models.IncidentAnalytics{}, fmt.Errorf("service: could not compute incident analytics: %w", err)
	}
	return analytics.IncidentAnalytics(incidents, s.repo.Now()), nil
}
