package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type FireDueRepository interface {
	Clock
	ListFireDues(ctx context.Context, filter models.FireDueFilter) ([]models.FireDue, error)
	GetFireDuesWithDetails(ctx context.Context) ([]models.FireDueWithDetails, error)
	GetFireDue(ctx context.Context, id string) (models.FireDue, bool, error)
	CreateFireDue(ctx context.Context, d models.FireDue) (models.FireDue, error)
	UpdateFireDue(ctx context.Context, id string, patch models.FireDuePatch) (models.FireDue, error)
	DeleteFireDue(ctx context.Context, id string) error
	MarkFireDuePaid(ctx context.Context, id string, paidAt time.Time) (models.FireDue, error)
	BulkMarkFireDuesPaid(ctx context.Context, ids []string, paidAt time.Time) (models.BulkPaymentResult, error)
	GenerateAnnualDues(ctx context.Context, year int, amount float64) ([]models.FireDue, error)
}

// FireDueService - ежегодные пожарные сборы
type FireDueService interface {
	ListFireDues(ctx context.Context, filter models.FireDueFilter) ([]models.FireDue, error)
	ListFireDuesWithDetails(ctx context.Context) ([]models.FireDueWithDetails, error)
	GetFireDue(ctx context.Context, id string) (models.FireDue, error)
	CreateFireDue(ctx context.Context, d models.FireDue) (models.FireDue, error)
	UpdateFireDue(ctx context.Context, id string, patch models.FireDuePatch) (models.FireDue, error)
	DeleteFireDue(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (models.FireDue, error)
	BulkMarkPaid(ctx context.Context, ids []string, paidAt time.Time) (models.BulkPaymentResult, error)
	GenerateAnnualDues(ctx context.Context, year int, amount float64) ([]models.FireDue, error)
	Summary(ctx context.Context) (models.FireDuesSummary, error)
}

type fireDueService struct {
	repo   FireDueRepository
	logger *logrus.Logger
}

func NewFireDueService(repo FireDueRepository, logger *logrus.Logger) FireDueService {
	return &fireDueService{repo: repo, logger: logger}
}

func (s *fireDueService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "fire_due", "method": method})
}

func (s *fireDueService) ListFireDues(ctx context.Context, filter models.FireDueFilter) ([]models.FireDue, error) {
	dues, err := s.repo.ListFireDues(ctx, filter)
	if err != nil {
		s.log("ListFireDues").WithError(err).Error("Failed to list fire dues")
		return nil, fmt.Errorf("service: could not list fire dues: %w", err)
	}
	return dues, nil
}

func (s *fireDueService) ListFireDuesWithDetails(ctx context.Context) ([]models.FireDueWithDetails, error) {
	rows, err := s.repo.GetFireDuesWithDetails(ctx)
	if err != nil {
		s.log("ListFireDuesWithDetails").WithError(err).Error("Failed to list fire dues with details")
		return nil, fmt.Errorf("service: could not list fire dues: %w", err)
	}
	return rows, nil
}

func (s *fireDueService) GetFireDue(ctx context.Context, id string) (models.FireDue, error) {
	d, ok, err := s.repo.GetFireDue(ctx, id)
	if err != nil {
		return models.FireDue{}, fmt.Errorf("service: could not get fire due: %w", err)
	}
	if !ok {
		return models.FireDue{}, notFound("Fire due", id)
	}
	return d, nil
}

func (s *fireDueService) CreateFireDue(ctx context.Context, d models.FireDue) (models.FireDue, error) {
	if d.Amount < 0 {
		return models.FireDue{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	created, err := s.repo.CreateFireDue(ctx, d)
	if err != nil {
		s.log("CreateFireDue").WithError(err).Error("Failed to create fire due")
		return models.FireDue{}, fmt.Errorf("service: could not create fire due: %w", err)
	}
	return created, nil
}

func (s *fireDueService) UpdateFireDue(ctx context.Context, id string, patch models.FireDuePatch) (models.FireDue, error) {
	updated, err := s.repo.UpdateFireDue(ctx, id, patch)
	if err != nil {
		s.log("UpdateFireDue").WithField("fire_due_id", id).WithError(err).Warn("Failed to update fire due")
		return models.FireDue{}, fmt.Errorf("service: could not update fire due: %w", err)
	}
	return updated, nil
}

func (s *fireDueService) DeleteFireDue(ctx context.Context, id string) error {
	if err := s.repo.DeleteFireDue(ctx, id); err != nil {
		s.log("DeleteFireDue").WithError(err).Error("Failed to delete fire due")
		return fmt.Errorf("service: could not delete fire due: %w", err)
	}
	return nil
}

func (s *fireDueService) MarkPaid(ctx context.Context, id string, paidAt time.Time) (models.FireDue, error) {
	paid, err := s.repo.MarkFireDuePaid(ctx, id, paidAt)
	if err != nil {
		s.log("MarkPaid").WithField("fire_due_id", id).WithError(err).Warn("Failed to mark fire due paid")
		return models.FireDue{}, fmt.Errorf("service: could not mark fire due paid: %w", err)
	}
	return paid, nil
}

// BulkMarkPaid отмечает оплату нескольких сборов; отсутствующие id возвращаются в Missing
func (s *fireDueService) BulkMarkPaid(ctx context.Context, ids []string, paidAt time.Time) (models.BulkPaymentResult, error) {
	log := s.log("BulkMarkPaid").WithField("count", len(ids))

	result, err := s.repo.BulkMarkFireDuesPaid(ctx, ids, paidAt)
	if err != nil {
		log.WithError(err).Error("Failed to mark fire dues paid")
		return models.BulkPaymentResult{}, fmt.Errorf("service: could not mark fire dues paid: %w", err)
	}
	if len(result.Missing) > 0 {
		log.WithField("missing", result.Missing).Warn("Some fire dues were not found")
	}
	log.WithField("updated", len(result.Updated)).Info("Fire dues marked paid")
	return result, nil
}

func (s *fireDueService) GenerateAnnualDues(ctx context.Context, year int, amount float64) ([]models.FireDue, error) {
	log := s.log("GenerateAnnualDues").WithField("year", year)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	created, err := s.repo.GenerateAnnualDues(ctx, year, amount)
	if err != nil {
		log.WithError(err).Error("Failed to generate annual dues")
		return nil, fmt.Errorf("service: could not generate annual dues: %w", err)
	}
	log.WithField("created", len(created)).Info("Annual dues generated")
	return created, nil
}

func (s *fireDueService) Summary(ctx context.Context) (models.FireDuesSummary, error) {
	dues, err := s.repo.ListFireDues(ctx, models.FireDueFilter{})
	if err != nil {
		s.log("Summary").WithError(err).Error("Failed to list fire dues")
		return models.FireDuesSummary{}, fmt.Errorf("service: could not summarize fire dues: %w", err)
	}
	return analytics.FireDuesSummary(dues, s.repo.Now()), nil
}
