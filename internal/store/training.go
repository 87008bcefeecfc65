package store

import (
	"context"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

func alertRuleKey(r models.AlertRule) string { return r.ID }

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

// CreateCourse добавляет курс; заданный id сохраняется, иначе выдается новый
func (s *Store) CreateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	if err := s.simulate(ctx); err != nil {
		return models.Course{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.newID("course")
	} else if indexOf(s.courses, c.ID, func(c models.Course) string { return c.ID }) >= 0 {
		return models.Course{}, ErrConflict
	}
	s.courses = append(s.courses, c)
	return c, nil
}

func (s *Store) ListAlertRules(ctx context.Context) ([]models.AlertRule, error) {
	if err := s.simulate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.alertRules, models.AlertRule.Clone), nil
}

func (s *Store) GetAlertRule(ctx context.Context, id string) (models.AlertRule, bool, error) {
	if err := s.simulate(ctx); err != nil {
		return models.AlertRule{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.alertRules, id, alertRuleKey)
	if i < 0 {
		return models.AlertRule{}, false, nil
	}
	return s.alertRules[i].Clone(), true, nil
}

func (s *Store) CreateAlertRule(ctx context.Context, r models.AlertRule) (models.AlertRule, error) {
	if err := s.simulate(ctx); err != nil {
		return models.AlertRule{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r = r.Clone()
	r.ID = s.newID("rule")
	if r.Metric == "" {
		r.Metric = models.MetricTrainingCompliance
	}
	if r.Condition == "" {
		r.Condition = models.AlertConditionBelow
	}
	s.alertRules = append(s.alertRules, r.Clone())
	return r, nil
}

// UpdateAlertRule заменяет настройки правила. LastTriggered сохраняется,
// пустые метрика и условие остаются прежними.
func (s *Store) UpdateAlertRule(ctx context.Context, id string, r models.AlertRule) (models.AlertRule, error) {
	if err := s.simulate(ctx); err != nil {
		return models.AlertRule{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.alertRules, id, alertRuleKey)
	if i < 0 {
		return models.AlertRule{}, notFound("Alert rule", id)
	}
	r = r.Clone()
	r.ID = id
	r.LastTriggered = s.alertRules[i].LastTriggered
	if r.Metric == "" {
		r.Metric = s.alertRules[i].Metric
	}
	if r.Condition == "" {
		r.Condition = s.alertRules[i].Condition
	}
	s.alertRules[i] = r.Clone()
	return r.Clone(), nil
}

func (s *Store) DeleteAlertRule(ctx context.Context, id string) error {
	if err := s.simulate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.alertRules, id, alertRuleKey); i >= 0 {
		s.alertRules = removeAt(s.alertRules, i)
	}
	return nil
}

// MarkRuleTriggered запоминает время последнего срабатывания правила
func (s *Store) MarkRuleTriggered(ctx context.Context, id string, at time.Time) (models.AlertRule, error) {
	if err := s.simulate(ctx); err != nil {
		return models.AlertRule{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.alertRules, id, alertRuleKey)
	if i < 0 {
		return models.AlertRule{}, notFound("Alert rule", id)
	}
	s.alertRules[i].LastTriggered = &at
	return s.alertRules[i].Clone(), nil
}
