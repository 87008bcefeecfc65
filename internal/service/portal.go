package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type PortalRepository interface {
	Clock
	ListCitizens(ctx context.Context) ([]models.Citizen, error)
	GetCitizen(ctx context.Context, id string) (models.Citizen, bool, error)
	CreateCitizen(ctx context.Context, c models.Citizen) (models.Citizen, error)
	GetCitizenDues(ctx context.Context, citizenID string) ([]models.FireDueWithDetails, error)
	SubmitForgivenessRequest(ctx context.Context, r models.BillForgivenessRequest) (models.BillForgivenessRequest, error)
	ListForgivenessRequests(ctx context.Context, citizenID string) ([]models.BillForgivenessRequest, error)
	GetPendingForgivenessRequests(ctx context.Context) ([]models.ForgivenessRequestWithDetails, error)
	ResolveForgivenessRequest(ctx context.Context, id string, approve bool, at time.Time) (models.BillForgivenessRequest, error)
}

// PortalService - кабинет жителя: сборы и заявки на их списание
type PortalService interface {
	ListCitizens(ctx context.Context) ([]models.Citizen, error)
	GetCitizen(ctx context.Context, id string) (models.Citizen, error)
	CreateCitizen(ctx context.Context, c models.Citizen) (models.Citizen, error)
	CitizenDues(ctx context.Context, citizenID string) ([]models.FireDueWithDetails, error)
	SubmitForgivenessRequest(ctx context.Context, r models.BillForgivenessRequest) (models.BillForgivenessRequest, error)
	ListForgivenessRequests(ctx context.Context, citizenID string) ([]models.BillForgivenessRequest, error)
	PendingForgivenessRequests(ctx context.Context) ([]models.ForgivenessRequestWithDetails, error)
	ResolveForgivenessRequest(ctx context.Context, id string, approve bool) (models.BillForgivenessRequest, error)
}

type portalService struct {
	repo   PortalRepository
	logger *logrus.Logger
}

func NewPortalService(repo PortalRepository, logger *logrus.Logger) PortalService {
	return &portalService{repo: repo, logger: logger}
}

func (s *portalService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "portal", "method": method})
}

func (s *portalService) ListCitizens(ctx context.Context) ([]models.Citizen, error) {
	list, err := s.repo.ListCitizens(ctx)
	if err != nil {
		s.log("ListCitizens").WithError(err).Error("Failed to list citizens")
		return nil, fmt.Errorf("service: could not list citizens: %w", err)
	}
	return list, nil
}

func (s *portalService) GetCitizen(ctx context.Context, id string) (models.Citizen, error) {
	c, ok, err := s.repo.GetCitizen(ctx, id)
	if err != nil {
		return models.Citizen{}, fmt.Errorf("service: could not get citizen: %w", err)
	}
	if !ok {
		return models.Citizen{}, notFound("Citizen", id)
	}
	return c, nil
}

func (s *portalService) CreateCitizen(ctx context.Context, c models.Citizen) (models.Citizen, error) {
	created, err := s.repo.CreateCitizen(ctx, c)
	if err != nil {
		s.log("CreateCitizen").WithError(err).Error("Failed to create citizen")
		return models.Citizen{}, fmt.Errorf("service: could not create citizen: %w", err)
	}
	return created, nil
}

func (s *portalService) CitizenDues(ctx context.Context, citizenID string) ([]models.FireDueWithDetails, error) {
	dues, err := s.repo.GetCitizenDues(ctx, citizenID)
	if err != nil {
		s.log("CitizenDues").WithField("citizen_id", citizenID).WithError(err).Warn("Failed to get citizen dues")
		return nil, fmt.Errorf("service: could not get citizen dues: %w", err)
	}
	return dues, nil
}

func (s *portalService) SubmitForgivenessRequest(ctx context.Context, r models.BillForgivenessRequest) (models.BillForgivenessRequest, error) {
	log := s.log("SubmitForgivenessRequest").WithFields(logrus.Fields{"citizen_id": r.CitizenID, "fire_due_id": r.FireDueID})

	created, err := s.repo.SubmitForgivenessRequest(ctx, r)
	if err != nil {
		log.WithError(err).Warn("Failed to submit forgiveness request")
		return models.BillForgivenessRequest{}, fmt.Errorf("service: could not submit forgiveness request: %w", err)
	}
	log.WithField("request_id", created.ID).Info("Forgiveness request submitted")
	return created, nil
}

func (s *portalService) ListForgivenessRequests(ctx context.Context, citizenID string) ([]models.BillForgivenessRequest, error) {
	list, err := s.repo.ListForgivenessRequests(ctx, citizenID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list forgiveness requests: %w", err)
	}
	return list, nil
}

func (s *portalService) PendingForgivenessRequests(ctx context.Context) ([]models.ForgivenessRequestWithDetails, error) {
	list, err := s.repo.GetPendingForgivenessRequests(ctx)
	if err != nil {
		s.log("PendingForgivenessRequests").WithError(err).Error("Failed to list pending requests")
		return nil, fmt.Errorf("service: could not list pending forgiveness requests: %w", err)
	}
	return list, nil
}

// ResolveForgivenessRequest одобряет или отклоняет заявку на текущую дату
func (s *portalService) ResolveForgivenessRequest(ctx context.Context, id string, approve bool) (models.BillForgivenessRequest, error) {
	log := s.log("ResolveForgivenessRequest").WithFields(logrus.Fields{"request_id": id, "approve": approve})

	resolved, err := s.repo.ResolveForgivenessRequest(ctx, id, approve, s.repo.Now())
	if err != nil {
		log.WithError(err).Warn("Failed to resolve forgiveness request")
		return models.BillForgivenessRequest{}, fmt.Errorf("service: could not resolve forgiveness request: %w", err)
	}
	log.WithField("status", resolved.Status).Info("Forgiveness request resolved")
	return resolved, nil
}
