package store

import (
	"context"
	"sort"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func personnelKey(p models.Personnel) string { return p.ID }

func (s *Store) ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Personnel, 0, len(s.personnel))
	for _, p := range s.personnel {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Rank != "" && p.Rank != filter.Rank {
			continue
		}
		if filter.Search != "" && !containsFold(p.Name, filter.Search) && !containsFold(p.Email, filter.Search) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out, nil
}

func (s *Store) GetPersonnel(ctx context.Context, id string) (models.Personnel, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Personnel{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.personnel, id, personnelKey)
	if i < 0 {
		return models.Personnel{}, false, nil
	}
	return s.personnel[i].Clone(), true, nil
}

func (s *Store) CreatePersonnel(ctx context.Context, p models.Personnel) (models.Personnel, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Personnel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	p.ID = s.newID("per")
	if p.Status == "" {
		p.Status = models.PersonnelStatusActive
	}
	if p.HireDate.IsZero() {
		p.HireDate = s.nowFn()
	}
	if p.Certifications == nil {
		p.Certifications = []models.Certification{}
	}
	if p.TrainingHistory == nil {
		p.TrainingHistory = []models.TrainingRecord{}
	}
	s.personnel = append(s.personnel, p.Clone())
	return p, nil
}

func (s *Store) UpdatePersonnel(ctx context.Context, id string, patch models.PersonnelPatch) (models.Personnel, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Personnel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.personnel, id, personnelKey)
	if i < 0 {
		return models.Personnel{}, notFound("Personnel", id)
	}
	current := s.personnel[i].Clone()
	patch.Apply(&current)
	s.personnel[i] = current.Clone()
	return current, nil
}

func (s *Store) DeletePersonnel(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.personnel, id, personnelKey); i >= 0 {
		s.personnel = removeAt(s.personnel, i)
	}
	return nil
}

// AddTrainingRecord добавляет пройденный курс в историю обучения сотрудника
func (s *Store) AddTrainingRecord(ctx context.Context, personnelID string, record models.TrainingRecord) (models.Personnel, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Personnel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.personnel, personnelID, personnelKey)
	if i < 0 {
		return models.Personnel{}, notFound("Personnel", personnelID)
	}
	if record.CompletedOn.IsZero() {
		record.CompletedOn = s.nowFn()
	}
	if record.CourseName == "" {
		if c := indexOf(s.courses, record.CourseID, func(c models.Course) string { return c.ID }); c >= 0 {
			record.CourseName = s.courses[c].Name
		}
	}
	current := s.personnel[i].Clone()
	current.TrainingHistory = append(current.TrainingHistory, record)
	s.personnel[i] = current.Clone()
	return current, nil
}

func (s *Store) ListShifts(ctx context.Context) ([]models.Shift, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := cloneAll(s.shifts, models.Shift.Clone)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out, nil
}

func (s *Store) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Shift{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	shift = shift.Clone()
	shift.ID = s.newID("shift")
	shift.PersonnelIDs = nonNil(shift.PersonnelIDs)
	for _, pid := range shift.PersonnelIDs {
		if indexOf(s.personnel, pid, personnelKey) < 0 {
			return models.Shift{}, notFound("Personnel", pid)
		}
	}
	s.shifts = append(s.shifts, shift.Clone())
	return shift, nil
}

func (s *Store) DeleteShift(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.shifts, id, func(sh models.Shift) string { return sh.ID }); i >= 0 {
		s.shifts = removeAt(s.shifts, i)
	}
	return nil
}

// ListExposureLogs возвращает журнал воздействий сотрудника с номерами инцидентов
func (s *Store) ListExposureLogs(ctx context.Context, personnelID string) ([]models.ExposureLog, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ExposureLog, 0)
	for _, e := range s.exposures {
		if personnelID != "" && e.PersonnelID != personnelID {
			continue
		}
		e.IncidentNumber = "N/A"
		if i := indexOf(s.incidents, e.IncidentID, incidentKey); i >= 0 {
			e.IncidentNumber = s.incidents[i].IncidentNumber
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.After(out[b].Date)
	})
	return out, nil
}

func (s *Store) CreateExposureLog(ctx context.Context, e models.ExposureLog) (models.ExposureLog, error) {
	if err := s.simulate(ctx); err != nil {
		return models.ExposureLog{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.personnel, e.PersonnelID, personnelKey) < 0 {
		return models.ExposureLog{}, notFound("Personnel", e.PersonnelID)
	}
	e.ID = s.newID("exp")
	e.IncidentNumber = ""
	if e.Date.IsZero() {
		e.Date = s.nowFn()
	}
	s.exposures = append(s.exposures, e)
	return e, nil
}
