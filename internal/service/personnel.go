package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type PersonnelRepository interface {
	Clock
	ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error)
	GetPersonnel(ctx context.Context, id string) (models.Personnel, bool, error)
	CreatePersonnel(ctx context.Context, p models.Personnel) (models.Personnel, error)
	UpdatePersonnel(ctx context.Context, id string, patch models.PersonnelPatch) (models.Personnel, error)
	DeletePersonnel(ctx context.Context, id string) error
	AddTrainingRecord(ctx context.Context, personnelID string, record models.TrainingRecord) (models.Personnel, error)
	ListShifts(ctx context.Context) ([]models.Shift, error)
	CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error)
	DeleteShift(ctx context.Context, id string) error
	ListExposureLogs(ctx context.Context, personnelID string) ([]models.ExposureLog, error)
	CreateExposureLog(ctx context.Context, e models.ExposureLog) (models.ExposureLog, error)
}

// PersonnelService - сотрудники, смены, журнал воздействий и сроки сертификатов
type PersonnelService interface {
	ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error)
	GetPersonnel(ctx context.Context, id string) (models.Personnel, error)
	CreatePersonnel(ctx context.Context, p models.Personnel) (models.Personnel, error)
	UpdatePersonnel(ctx context.Context, id string, patch models.PersonnelPatch) (models.Personnel, error)
	DeletePersonnel(ctx context.Context, id string) error
	AddTrainingRecord(ctx context.Context, personnelID string, record models.TrainingRecord) (models.Personnel, error)
	ListShifts(ctx context.Context) ([]models.Shift, error)
	CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error)
	DeleteShift(ctx context.Context, id string) error
	ListExposureLogs(ctx context.Context, personnelID string) ([]models.ExposureLog, error)
	CreateExposureLog(ctx context.Context, e models.ExposureLog) (models.ExposureLog, error)
	ExpiringCertifications(ctx context.Context, withinDays int) ([]models.ExpiringCertification, error)
}

type personnelService struct {
	repo   PersonnelRepository
	logger *logrus.Logger
	audit  auditor
}

func NewPersonnelService(repo PersonnelRepository, logger *logrus.Logger, publisher audit.Publisher) PersonnelService {
	return &personnelService{
		repo:   repo,
		logger: logger,
		audit:  auditor{publisher: publisher, clock: repo, logger: logger},
	}
}

func (s *personnelService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "personnel", "method": method})
}

func (s *personnelService) ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error) {
	list, err := s.repo.ListPersonnel(ctx, filter)
	if err != nil {
		s.log("ListPersonnel").WithError(err).Error("Failed to list personnel")
		return nil, fmt.Errorf("service: could not list personnel: %w", err)
	}
	return list, nil
}

func (s *personnelService) GetPersonnel(ctx context.Context, id string) (models.Personnel, error) {
	p, ok, err := s.repo.GetPersonnel(ctx, id)
	if err != nil {
		s.log("GetPersonnel").WithError(err).Error("Failed to get personnel")
		return models.Personnel{}, fmt.Errorf("service: could not get personnel: %w", err)
	}
	if !ok {
		return models.Personnel{}, notFound("Personnel", id)
	}
	return p, nil
}

func (s *personnelService) CreatePersonnel(ctx context.Context, p models.Personnel) (models.Personnel, error) {
	log := s.log("CreatePersonnel").WithField("name", p.Name)
	log.Info("Attempting to create personnel")

	created, err := s.repo.CreatePersonnel(ctx, p)
	if err != nil {
		log.WithError(err).Error("Failed to create personnel")
		return models.Personnel{}, fmt.Errorf("service: could not create personnel: %w", err)
	}

	s.audit.record(ctx, audit.ActionCreate, "Personnel", created.ID, map[string]any{"name": created.Name, "rank": created.Rank})
	log.WithField("personnel_id", created.ID).Info("Personnel created successfully")
	return created, nil
}

func (s *personnelService) UpdatePersonnel(ctx context.Context, id string, patch models.PersonnelPatch) (models.Personnel, error) {
	log := s.log("UpdatePersonnel").WithField("personnel_id", id)

	updated, err := s.repo.UpdatePersonnel(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update personnel")
		return models.Personnel{}, fmt.Errorf("service: could not update personnel: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Personnel", id, map[string]any{"status": updated.Status})
	log.Info("Personnel updated successfully")
	return updated, nil
}

func (s *personnelService) DeletePersonnel(ctx context.Context, id string) error {
	log := s.log("DeletePersonnel").WithField("personnel_id", id)

	if err := s.repo.DeletePersonnel(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete personnel")
		return fmt.Errorf("service: could not delete personnel: %w", err)
	}

	s.audit.record(ctx, audit.ActionDelete, "Personnel", id, nil)
	log.Info("Personnel deleted successfully")
	return nil
}

func (s *personnelService) AddTrainingRecord(ctx context.Context, personnelID string, record models.TrainingRecord) (models.Personnel, error) {
	log := s.log("AddTrainingRecord").WithFields(logrus.Fields{"personnel_id": personnelID, "course_id": record.CourseID})

	updated, err := s.repo.AddTrainingRecord(ctx, personnelID, record)
	if err != nil {
		log.WithError(err).Warn("Failed to add training record")
		return models.Personnel{}, fmt.Errorf("service: could not add training record: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Personnel", personnelID, map[string]any{"training": record.CourseID})
	return updated, nil
}

func (s *personnelService) ListShifts(ctx context.Context) ([]models.Shift, error) {
	shifts, err := s.repo.ListShifts(ctx)
	if err != nil {
		s.log("ListShifts").WithError(err).Error("Failed to list shifts")
		return nil, fmt.Errorf("service: could not list shifts: %w", err)
	}
	return shifts, nil
}

func (s *personnelService) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	created, err := s.repo.CreateShift(ctx, shift)
	if err != nil {
		s.log("CreateShift").WithError(err).Warn("Failed to create shift")
		return models.Shift{}, fmt.Errorf("service: could not create shift: %w", err)
	}
	return created, nil
}

func (s *personnelService) DeleteShift(ctx context.Context, id string) error {
	if err := s.repo.DeleteShift(ctx, id); err != nil {
		s.log("DeleteShift").WithError(err).Error("Failed to delete shift")
		return fmt.Errorf("service: could not delete shift: %w", err)
	}
	return nil
}

func (s *personnelService) ListExposureLogs(ctx context.Context, personnelID string) ([]models.ExposureLog, error) {
	logs, err := s.repo.ListExposureLogs(ctx, personnelID)
	if err != nil {
		s.log("ListExposureLogs").WithError(err).Error("Failed to list exposure logs")
		return nil, fmt.Errorf("service: could not list exposure logs: %w", err)
	}
	return logs, nil
}

func (s *personnelService) CreateExposureLog(ctx context.Context, e models.ExposureLog) (models.ExposureLog, error) {
	created, err := s.repo.CreateExposureLog(ctx, e)
	if err != nil {
		s.log("CreateExposureLog").WithError(err).Warn("Failed to create exposure log")
		return models.ExposureLog{}, fmt.Errorf("service: could not create exposure log: %w", err)
	}
	return created, nil
}

// ExpiringCertifications возвращает сертификаты, истекающие в ближайшие withinDays дней
func (s *personnelService) ExpiringCertifications(ctx context.Context, withinDays int) ([]models.ExpiringCertification, error) {
	if withinDays <= 0 {
		withinDays = 90
	}
	list, err := s.repo.ListPersonnel(ctx, models.PersonnelFilter{})
	if err != nil {
		s.log("ExpiringCertifications").WithError(err).Error("Failed to list personnel")
		return nil, fmt.Errorf("service: could not list expiring certifications: %w", err)
	}
	return analytics.ExpiringCertifications(list, s.repo.Now(), withinDays), nil
}
