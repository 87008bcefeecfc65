package store

import (
	"context"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func propertyKey(p models.Property) string { return p.ID }
func ownerKey(o models.Owner) string       { return o.ID }

func (s *Store) ListOwners(ctx context.Context, search string) ([]models.Owner, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Owner, 0, len(s.owners))
	for _, o := range s.owners {
		if search != "" && !containsFold(o.Name, search) && !containsFold(o.Email, search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Store) GetOwner(ctx context.Context, id string) (models.Owner, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Owner{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.owners, id, ownerKey)
	if i < 0 {
		return models.Owner{}, false, nil
	}
	return s.owners[i], true, nil
}

func (s *Store) CreateOwner(ctx context.Context, o models.Owner) (models.Owner, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Owner{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.newID("own")
	s.owners = append(s.owners, o)
	return o, nil
}

func (s *Store) UpdateOwner(ctx context.Context, id string, patch models.OwnerPatch) (models.Owner, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Owner{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.owners, id, ownerKey)
	if i < 0 {
		return models.Owner{}, notFound("Owner", id)
	}
	patch.Apply(&s.owners[i])
	return s.owners[i], nil
}

// DeleteOwner удаляет владельца и ссылки на него из объектов
func (s *Store) DeleteOwner(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.owners, id, ownerKey)
	if i < 0 {
		return nil
	}
	s.owners = removeAt(s.owners, i)
	for p := range s.properties {
		ids := s.properties[p].OwnerIDs[:0:0]
		for _, oid := range s.properties[p].OwnerIDs {
			if oid != id {
				ids = append(ids, oid)
			}
		}
		s.properties[p].OwnerIDs = ids
	}
	return nil
}

// GetProperties соединяет каждый объект с владельцами и применяет фильтры
func (s *Store) GetProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyWithOwners, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PropertyWithOwners, 0, len(s.properties))
	for _, p := range s.properties {
		row := models.PropertyWithOwners{Property: p.Clone(), OwnerNames: s.ownerNames(p.OwnerIDs)}
		if filter.OccupancyType != "" && p.OccupancyType != filter.OccupancyType {
			continue
		}
		if filter.HasPIP != nil && (p.PreIncidentPlan != nil) != *filter.HasPIP {
			continue
		}
		if filter.Search != "" && !containsFold(p.Address, filter.Search) &&
			!containsFold(p.ParcelID, filter.Search) && !containsFold(row.OwnerNames, filter.Search) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *Store) GetProperty(ctx context.Context, id string) (models.Property, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Property{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.properties, id, propertyKey)
	if i < 0 {
		return models.Property{}, false, nil
	}
	return s.properties[i].Clone(), true, nil
}

// ParcelIDExists проверяет занятость номера участка; excludeID исключает сам объект при обновлении
func (s *Store) ParcelIDExists(ctx context.Context, parcelID, excludeID string) (bool, error) {
	if err := s.simulate(ctx); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID != excludeID && strings.EqualFold(p.ParcelID, parcelID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	p.ID = s.newID("prop")
	p.OwnerIDs = nonNil(p.OwnerIDs)
	if p.PreIncidentPlan != nil {
		p.PreIncidentPlan.ID = s.newID("pip")
		p.PreIncidentPlan.UpdatedAt = s.nowFn()
	}
	s.properties = append(s.properties, p.Clone())
	return p, nil
}

func (s *Store) UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (models.Property, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.properties, id, propertyKey)
	if i < 0 {
		return models.Property{}, notFound("Property", id)
	}
	current := s.properties[i].Clone()
	patch.Apply(&current)
	s.properties[i] = current.Clone()
	return current, nil
}

func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.properties, id, propertyKey); i >= 0 {
		s.properties = removeAt(s.properties, i)
	}
	return nil
}

// SetPreIncidentPlan заменяет план объекта (у объекта не больше одного плана)
func (s *Store) SetPreIncidentPlan(ctx context.Context, propertyID string, plan models.PreIncidentPlan) (models.Property, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.properties, propertyID, propertyKey)
	if i < 0 {
		return models.Property{}, notFound("Property", propertyID)
	}
	current := s.properties[i].Clone()
	plan = plan.Clone()
	if current.PreIncidentPlan != nil {
		plan.ID = current.PreIncidentPlan.ID
	} else {
		plan.ID = s.newID("pip")
	}
	plan.UpdatedAt = s.nowFn()
	current.PreIncidentPlan = &plan
	s.properties[i] = current.Clone()
	return current, nil
}

func (s *Store) RemovePreIncidentPlan(ctx context.Context, propertyID string) (models.Property, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.properties, propertyID, propertyKey)
	if i < 0 {
		return models.Property{}, notFound("Property", propertyID)
	}
	s.properties[i].PreIncidentPlan = nil
	return s.properties[i].Clone(), nil
}

// ownerNames - имена владельцев через запятую; вызывается под s.mu
func (s *Store) ownerNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if i := indexOf(s.owners, id, ownerKey); i >= 0 {
			names = append(names, s.owners[i].Name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}
