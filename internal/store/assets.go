package store

import (
	"context"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func assetKey(a models.Asset) string { return a.ID }

func (s *Store) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.AssignedToID != "" && a.AssignedToID != filter.AssignedToID {
			continue
		}
		if filter.ParentID != "" && a.ParentID != filter.ParentID {
			continue
		}
		if filter.Search != "" && !containsFold(a.Name, filter.Search) && !containsFold(a.SerialNumber, filter.Search) {
			continue
		}
		out = append(out, a.Clone())
	}
	return out, nil
}

func (s *Store) GetAsset(ctx context.Context, id string) (models.Asset, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Asset{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.assets, id, assetKey)
	if i < 0 {
		return models.Asset{}, false, nil
	}
	return s.assets[i].Clone(), true, nil
}

// SerialNumberExists проверяет, занят ли серийный номер другим оборудованием
func (s *Store) SerialNumberExists(ctx context.Context, serial, excludeID string) (bool, error) {
	if err := s.simulate(ctx); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assets {
		if a.ID != excludeID && strings.EqualFold(a.SerialNumber, serial) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateAsset(ctx context.Context, a models.Asset) (models.Asset, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a = a.Clone()
	a.ID = s.newID("asset")
	if a.Status == "" {
		a.Status = models.AssetStatusInService
	}
	if err := s.validateParent(a.ID, a.ParentID); err != nil {
		return models.Asset{}, err
	}
	s.assets = append(s.assets, a.Clone())
	return a, nil
}

func (s *Store) UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.assets, id, assetKey)
	if i < 0 {
		return models.Asset{}, notFound("Asset", id)
	}
	current := s.assets[i].Clone()
	patch.Apply(&current)
	if err := s.validateParent(id, current.ParentID); err != nil {
		return models.Asset{}, err
	}
	s.assets[i] = current.Clone()
	return current, nil
}

// DeleteAsset удаляет оборудование; его компоненты отсоединяются от родителя
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.assets, id, assetKey)
	if i < 0 {
		return nil
	}
	s.assets = removeAt(s.assets, i)
	for c := range s.assets {
		if s.assets[c].ParentID == id {
			s.assets[c].ParentID = ""
		}
	}
	return nil
}

// AssignAsset закрепляет оборудование за техникой или сотрудником; пустой targetID снимает закрепление
func (s *Store) AssignAsset(ctx context.Context, assetID, targetType, targetID string) (models.Asset, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.assets, assetID, assetKey)
	if i < 0 {
		return models.Asset{}, notFound("Asset", assetID)
	}
	if targetID == "" {
		s.assets[i].AssignedToID = ""
		s.assets[i].AssignedToType = ""
		return s.assets[i].Clone(), nil
	}
	switch targetType {
	case models.AssignedToApparatus:
		if indexOf(s.apparatus, targetID, apparatusKey) < 0 {
			return models.Asset{}, notFound("Apparatus", targetID)
		}
	case models.AssignedToPersonnel:
		if indexOf(s.personnel, targetID, personnelKey) < 0 {
			return models.Asset{}, notFound("Personnel", targetID)
		}
	default:
		return models.Asset{}, ErrInvalidAssignment
	}
	s.assets[i].AssignedToID = targetID
	s.assets[i].AssignedToType = targetType
	return s.assets[i].Clone(), nil
}

// validateParent проверяет, что родитель существует и не образует цикл
func (s *Store) validateParent(id, parentID string) error {
	seen := map[string]struct{}{id: {}}
	for parentID != "" {
		if _, loop := seen[parentID]; loop {
			return ErrInvalidParent
		}
		seen[parentID] = struct{}{}
		i := indexOf(s.assets, parentID, assetKey)
		if i < 0 {
			return ErrInvalidParent
		}
		parentID = s.assets[i].ParentID
	}
	return nil
}
