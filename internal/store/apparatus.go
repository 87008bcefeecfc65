package store

import (
	"context"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func apparatusKey(a models.Apparatus) string { return a.ID }

func (s *Store) ListApparatus(ctx context.Context, filter models.ApparatusFilter) ([]models.Apparatus, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Apparatus, 0, len(s.apparatus))
	for _, a := range s.apparatus {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Search != "" && !containsFold(a.UnitID, filter.Search) && !containsFold(a.Type, filter.Search) {
			continue
		}
		out = append(out, a.Clone())
	}
	return out, nil
}

func (s *Store) GetApparatus(ctx context.Context, id string) (models.Apparatus, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Apparatus{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.apparatus, id, apparatusKey)
	if i < 0 {
		return models.Apparatus{}, false, nil
	}
	return s.apparatus[i].Clone(), true, nil
}

func (s *Store) CreateApparatus(ctx context.Context, a models.Apparatus) (models.Apparatus, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Apparatus{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a = a.Clone()
	a.ID = s.newID("app")
	if a.Status == "" {
		a.Status = models.ApparatusStatusInService
	}
	if a.VitalsHistory == nil {
		a.VitalsHistory = []models.VitalsReading{}
	}
	if a.Compartments == nil {
		a.Compartments = []models.Compartment{}
	}
	s.apparatus = append(s.apparatus, a.Clone())
	return a, nil
}

func (s *Store) UpdateApparatus(ctx context.Context, id string, patch models.ApparatusPatch) (models.Apparatus, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Apparatus{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.apparatus, id, apparatusKey)
	if i < 0 {
		return models.Apparatus{}, notFound("Apparatus", id)
	}
	current := s.apparatus[i].Clone()
	patch.Apply(&current)
	s.apparatus[i] = current.Clone()
	return current, nil
}

func (s *Store) DeleteApparatus(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.apparatus, id, apparatusKey); i >= 0 {
		s.apparatus = removeAt(s.apparatus, i)
	}
	return nil
}

// AddVitals добавляет показания в начало истории и обновляет текущие пробег и моточасы
func (s *Store) AddVitals(ctx context.Context, id string, reading models.VitalsReading) (models.Apparatus, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Apparatus{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.apparatus, id, apparatusKey)
	if i < 0 {
		return models.Apparatus{}, notFound("Apparatus", id)
	}
	if reading.Date.IsZero() {
		reading.Date = s.nowFn()
	}
	current := s.apparatus[i].Clone()
	current.VitalsHistory = append([]models.VitalsReading{reading}, current.VitalsHistory...)
	current.Mileage = reading.Mileage
	current.EngineHours = reading.EngineHours
	s.apparatus[i] = current.Clone()
	return current, nil
}
