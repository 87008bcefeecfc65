package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type ApparatusRepository interface {
	Clock
	ListApparatus(ctx context.Context, filter models.ApparatusFilter) ([]models.Apparatus, error)
	GetApparatus(ctx context.Context, id string) (models.Apparatus, bool, error)
	CreateApparatus(ctx context.Context, a models.Apparatus) (models.Apparatus, error)
	UpdateApparatus(ctx context.Context, id string, patch models.ApparatusPatch) (models.Apparatus, error)
	DeleteApparatus(ctx context.Context, id string) error
	AddVitals(ctx context.Context, id string, reading models.VitalsReading) (models.Apparatus, error)
}

type ApparatusService interface {
	ListApparatus(ctx context.Context, filter models.ApparatusFilter) ([]models.Apparatus, error)
	GetApparatus(ctx context.Context, id string) (models.Apparatus, error)
	CreateApparatus(ctx context.Context, a models.Apparatus) (models.Apparatus, error)
	UpdateApparatus(ctx context.Context, id string, patch models.ApparatusPatch) (models.Apparatus, error)
	DeleteApparatus(ctx context.Context, id string) error
	AddVitals(ctx context.Context, id string, reading models.VitalsReading) (models.Apparatus, error)
}

type apparatusService struct {
	repo   ApparatusRepository
	logger *logrus.Logger
	audit  auditor
}

func NewApparatusService(repo ApparatusRepository, logger *logrus.Logger, publisher audit.Publisher) ApparatusService {
	return &apparatusService{
		repo:   repo,
		logger: logger,
		audit:  auditor{publisher: publisher, clock: repo, logger: logger},
	}
}

func (s *apparatusService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "apparatus", "method": method})
}

func (s *apparatusService) ListApparatus(ctx context.Context, filter models.ApparatusFilter) ([]models.Apparatus, error) {
	list, err := s.repo.ListApparatus(ctx, filter)
	if err != nil {
		s.log("ListApparatus").WithError(err).Error("Failed to list apparatus")
		return nil, fmt.Errorf("service: could not list apparatus: %w", err)
	}
	return list, nil
}

func (s *apparatusService) GetApparatus(ctx context.Context, id string) (models.Apparatus, error) {
	a, ok, err := s.repo.GetApparatus(ctx, id)
	if err != nil {
		s.log("GetApparatus").WithError(err).Error("Failed to get apparatus")
		return models.Apparatus{}, fmt.Errorf("service: could not get apparatus: %w", err)
	}
	if !ok {
		return models.Apparatus{}, notFound("Apparatus", id)
	}
	return a, nil
}

func (s *apparatusService) CreateApparatus(ctx context.Context, a models.Apparatus) (models.Apparatus, error) {
	log := s.log("CreateApparatus").WithField("unit_id", a.UnitID)

	created, err := s.repo.CreateApparatus(ctx, a)
	if err != nil {
		log.WithError(err).Error("Failed to create apparatus")
		return models.Apparatus{}, fmt.Errorf("service: could not create apparatus: %w", err)
	}

	s.audit.record(ctx, audit.ActionCreate, "Apparatus", created.ID, map[string]any{"unit_id": created.UnitID})
	log.WithField("apparatus_id", created.ID).Info("Apparatus created successfully")
	return created, nil
}

func (s *apparatusService) UpdateApparatus(ctx context.Context, id string, patch models.ApparatusPatch) (models.Apparatus, error) {
	log := s.log("UpdateApparatus").WithField("apparatus_id", id)

	updated, err := s.repo.UpdateApparatus(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update apparatus")
		return models.Apparatus{}, fmt.Errorf("service: could not update apparatus: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Apparatus", id, map[string]any{"status": updated.Status})
	log.Info("Apparatus updated successfully")
	return updated, nil
}

func (s *apparatusService) DeleteApparatus(ctx context.Context, id string) error {
	if err := s.repo.DeleteApparatus(ctx, id); err != nil {
		s.log("DeleteApparatus").WithError(err).Error("Failed to delete apparatus")
		return fmt.Errorf("service: could not delete apparatus: %w", err)
	}
	s.audit.record(ctx, audit.ActionDelete, "Apparatus", id, nil)
	return nil
}

// AddVitals записывает показания пробега и моточасов
func (s *apparatusService) AddVitals(ctx context.Context, id string, reading models.VitalsReading) (models.Apparatus, error) {
	log := s.log("AddVitals").WithField("apparatus_id", id)

	updated, err := s.repo.AddVitals(ctx, id, reading)
	if err != nil {
		log.WithError(err).Warn("Failed to add vitals")
		return models.Apparatus{}, fmt.Errorf("service: could not add vitals: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Apparatus", id, map[string]any{
		"mileage":      reading.Mileage,
		"engine_hours": reading.EngineHours,
	})
	return updated, nil
}
