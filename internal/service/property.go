package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type PropertyRepository interface {
	ListOwners(ctx context.Context, search string) ([]models.Owner, error)
	GetOwner(ctx context.Context, id string) (models.Owner, bool, error)
	CreateOwner(ctx context.Context, o models.Owner) (models.Owner, error)
	UpdateOwner(ctx context.Context, id string, patch models.OwnerPatch) (models.Owner, error)
	DeleteOwner(ctx context.Context, id string) error
	GetProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyWithOwners, error)
	GetProperty(ctx context.Context, id string) (models.Property, bool, error)
	ParcelIDExists(ctx context.Context, parcelID, excludeID string) (bool, error)
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	SetPreIncidentPlan(ctx context.Context, propertyID string, plan models.PreIncidentPlan) (models.Property, error)
	RemovePreIncidentPlan(ctx context.Context, propertyID string) (models.Property, error)
}

// PropertyService - объекты, владельцы и планы пожаротушения
type PropertyService interface {
	ListOwners(ctx context.Context, search string) ([]models.Owner, error)
	GetOwner(ctx context.Context, id string) (models.Owner, error)
	CreateOwner(ctx context.Context, o models.Owner) (models.Owner, error)
	UpdateOwner(ctx context.Context, id string, patch models.OwnerPatch) (models.Owner, error)
	DeleteOwner(ctx context.Context, id string) error
	ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyWithOwners, error)
	GetProperty(ctx context.Context, id string) (models.Property, error)
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	SetPreIncidentPlan(ctx context.Context, propertyID string, plan models.PreIncidentPlan) (models.Property, error)
	RemovePreIncidentPlan(ctx context.Context, propertyID string) (models.Property, error)
}

type propertyService struct {
	repo   PropertyRepository
	logger *logrus.Logger
}

func NewPropertyService(repo PropertyRepository, logger *logrus.Logger) PropertyService {
	return &propertyService{repo: repo, logger: logger}
}

func (s *propertyService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "property", "method": method})
}

func (s *propertyService) ListOwners(ctx context.Context, search string) ([]models.Owner, error) {
	owners, err := s.repo.ListOwners(ctx, search)
	if err != nil {
		s.log("ListOwners").WithError(err).Error("Failed to list owners")
		return nil, fmt.Errorf("service: could not list owners: %w", err)
	}
	return owners, nil
}

func (s *propertyService) GetOwner(ctx context.Context, id string) (models.Owner, error) {
	o, ok, err := s.repo.GetOwner(ctx, id)
	if err != nil {
		return models.Owner{}, fmt.Errorf("service: could not get owner: %w", err)
	}
	if !ok {
		return models.Owner{}, notFound("Owner", id)
	}
	return o, nil
}

func (s *propertyService) CreateOwner(ctx context.Context, o models.Owner) (models.Owner, error) {
	created, err := s.repo.CreateOwner(ctx, o)
	if err != nil {
		s.log("CreateOwner").WithError(err).Error("Failed to create owner")
		return models.Owner{}, fmt.Errorf("service: could not create owner: %w", err)
	}
	return created, nil
}

func (s *propertyService) UpdateOwner(ctx context.Context, id string, patch models.OwnerPatch) (models.Owner, error) {
	updated, err := s.repo.UpdateOwner(ctx, id, patch)
	if err != nil {
		s.log("UpdateOwner").WithError(err).Warn("Failed to update owner")
		return models.Owner{}, fmt.Errorf("service: could not update owner: %w", err)
	}
	return updated, nil
}

func (s *propertyService) DeleteOwner(ctx context.Context, id string) error {
	if err := s.repo.DeleteOwner(ctx, id); err != nil {
		s.log("DeleteOwner").WithError(err).Error("Failed to delete owner")
		return fmt.Errorf("service: could not delete owner: %w", err)
	}
	return nil
}

func (s *propertyService) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyWithOwners, error) {
	list, err := s.repo.GetProperties(ctx, filter)
	if err != nil {
		s.log("ListProperties").WithError(err).Error("Failed to list properties")
		return nil, fmt.Errorf("service: could not list properties: %w", err)
	}
	return list, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	p, ok, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: could not get property: %w", err)
	}
	if !ok {
		return models.Property{}, notFound("Property", id)
	}
	return p, nil
}

// CreateProperty создает объект; номер участка должен быть уникальным
func (s *propertyService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	log := s.log("CreateProperty").WithField("parcel_id", p.ParcelID)

	if err := s.checkParcel(ctx, p.ParcelID, ""); err != nil {
		log.WithError(err).Warn("Parcel check failed")
		return models.Property{}, err
	}
	created, err := s.repo.CreateProperty(ctx, p)
	if err != nil {
		log.WithError(err).Error("Failed to create property")
		return models.Property{}, fmt.Errorf("service: could not create property: %w", err)
	}
	log.WithField("property_id", created.ID).Info("Property created successfully")
	return created, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (models.Property, error) {
	log := s.log("UpdateProperty").WithField("property_id", id)

	if patch.ParcelID != nil {
		if err := s.checkParcel(ctx, *patch.ParcelID, id); err != nil {
			log.WithError(err).Warn("Parcel check failed")
			return models.Property{}, err
		}
	}
	updated, err := s.repo.UpdateProperty(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update property")
		return models.Property{}, fmt.Errorf("service: could not update property: %w", err)
	}
	return updated, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.repo.DeleteProperty(ctx, id); err != nil {
		s.log("DeleteProperty").WithError(err).Error("Failed to delete property")
		return fmt.Errorf("service: could not delete property: %w", err)
	}
	return nil
}

func (s *propertyService) SetPreIncidentPlan(ctx context.Context, propertyID string, plan models.PreIncidentPlan) (models.Property, error) {
	updated, err := s.repo.SetPreIncidentPlan(ctx, propertyID, plan)
	if err != nil {
		s.log("SetPreIncidentPlan").WithError(err).Warn("Failed to set pre-incident plan")
		return models.Property{}, fmt.Errorf("service: could not set pre-incident plan: %w", err)
	}
	return updated, nil
}

func (s *propertyService) RemovePreIncidentPlan(ctx context.Context, propertyID string) (models.Property, error) {
	updated, err := s.repo.RemovePreIncidentPlan(ctx, propertyID)
	if err != nil {
		s.log("RemovePreIncidentPlan").WithError(err).Warn("Failed to remove pre-incident plan")
		return models.Property{}, fmt.Errorf("service: could not remove pre-incident plan: %w", err)
	}
	return updated, nil
}

func (s *propertyService) checkParcel(ctx context.Context, parcelID, excludeID string) error {
	if strings.TrimSpace(parcelID) == "" {
		return fmt.Errorf("%w: parcel id is required", ErrValidation)
	}
	taken, err := s.repo.ParcelIDExists(ctx, parcelID, excludeID)
	if err != nil {
		return fmt.Errorf("service: could not check parcel id: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: parcel id %s already exists", ErrConflict, parcelID)
	}
	return nil
}
