package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type AssetRepository interface {
	Clock
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (models.Asset, bool, error)
	SerialNumberExists(ctx context.Context, serial, excludeID string) (bool, error)
	CreateAsset(ctx context.Context, a models.Asset) (models.Asset, error)
	UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	AssignAsset(ctx context.Context, assetID, targetType, targetID string) (models.Asset, error)
}

// AssetService - учет оборудования и его закрепление
type AssetService interface {
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (models.Asset, error)
	ListComponents(ctx context.Context, parentID string) ([]models.Asset, error)
	CreateAsset(ctx context.Context, a models.Asset) (models.Asset, error)
	UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	AssignAsset(ctx context.Context, assetID, targetType, targetID string) (models.Asset, error)
}

type assetService struct {
	repo   AssetRepository
	logger *logrus.Logger
	audit  auditor
}

func NewAssetService(repo AssetRepository, logger *logrus.Logger, publisher audit.Publisher) AssetService {
	return &assetService{
		repo:   repo,
		logger: logger,
		audit:  auditor{publisher: publisher, clock: repo, logger: logger},
	}
}

func (s *assetService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "asset", "method": method})
}

func (s *assetService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	assets, err := s.repo.ListAssets(ctx, filter)
	if err != nil {
		s.log("ListAssets").WithError(err).Error("Failed to list assets")
		return nil, fmt.Errorf("service: could not list assets: %w", err)
	}
	return assets, nil
}

func (s *assetService) GetAsset(ctx context.Context, id string) (models.Asset, error) {
	a, ok, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return models.Asset{}, fmt.Errorf("service: could not get asset: %w", err)
	}
	if !ok {
		return models.Asset{}, notFound("Asset", id)
	}
	return a, nil
}

// ListComponents возвращает компоненты комплекта
func (s *assetService) ListComponents(ctx context.Context, parentID string) ([]models.Asset, error) {
	if _, err := s.GetAsset(ctx, parentID); err != nil {
		return nil, err
	}
	return s.ListAssets(ctx, models.AssetFilter{ParentID: parentID})
}

// CreateAsset создает оборудование; серийный номер должен быть уникальным
func (s *assetService) CreateAsset(ctx context.Context, a models.Asset) (models.Asset, error) {
	log := s.log("CreateAsset").WithField("serial_number", a.SerialNumber)

	if err := s.checkSerial(ctx, a.SerialNumber, ""); err != nil {
		log.WithError(err).Warn("Serial number check failed")
		return models.Asset{}, err
	}
	created, err := s.repo.CreateAsset(ctx, a)
	if err != nil {
		log.WithError(err).Warn("Failed to create asset")
		return models.Asset{}, fmt.Errorf("service: could not create asset: %w", err)
	}

	s.audit.record(ctx, audit.ActionCreate, "Asset", created.ID, map[string]any{"name": created.Name, "serial_number": created.SerialNumber})
	log.WithField("asset_id", created.ID).Info("Asset created successfully")
	return created, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error) {
	log := s.log("UpdateAsset").WithField("asset_id", id)

	if patch.SerialNumber != nil {
		if err := s.checkSerial(ctx, *patch.SerialNumber, id); err != nil {
			log.WithError(err).Warn("Serial number check failed")
			return models.Asset{}, err
		}
	}
	updated, err := s.repo.UpdateAsset(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update asset")
		return models.Asset{}, fmt.Errorf("service: could not update asset: %w", err)
	}

	s.audit.record(ctx, audit.ActionUpdate, "Asset", id, map[string]any{"status": updated.Status})
	return updated, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		s.log("DeleteAsset").WithError(err).Error("Failed to delete asset")
		return fmt.Errorf("service: could not delete asset: %w", err)
	}
	s.audit.record(ctx, audit.ActionDelete, "Asset", id, nil)
	return nil
}

// AssignAsset закрепляет оборудование за техникой или сотрудником
func (s *assetService) AssignAsset(ctx context.Context, assetID, targetType, targetID string) (models.Asset, error) {
	log := s.log("AssignAsset").WithFields(logrus.Fields{
		"asset_id":    assetID,
		"target_type": targetType,
		"target_id":   targetID,
	})

	updated, err := s.repo.AssignAsset(ctx, assetID, targetType, targetID)
	if err != nil {
		log.WithError(err).Warn("Failed to assign asset")
		return models.Asset{}, fmt.Errorf("service: could not assign asset: %w", err)
	}

	s.audit.record(ctx, audit.ActionAssign, "Asset", assetID, map[string]any{
		"assigned_to_type": targetType,
		"assigned_to_id":   targetID,
	})
	log.Info("Asset assignment updated")
	return updated, nil
}

func (s *assetService) checkSerial(ctx context.Context, serial, excludeID string) error {
	if strings.TrimSpace(serial) == "" {
		return nil
	}
	taken, err := s.repo.SerialNumberExists(ctx, serial, excludeID)
	if err != nil {
		return fmt.Errorf("service: could not check serial number: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: serial number %s already exists", ErrConflict, serial)
	}
	return nil
}
