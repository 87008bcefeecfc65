package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/analytics"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

type TrainingRepository interface {
	Clock
	ListPersonnel(ctx context.Context, filter models.PersonnelFilter) ([]models.Personnel, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, c models.Course) (models.Course, error)
	ListAlertRules(ctx context.Context) ([]models.AlertRule, error)
	CreateAlertRule(ctx context.Context, r models.AlertRule) (models.AlertRule, error)
	UpdateAlertRule(ctx context.Context, id string, r models.AlertRule) (models.AlertRule, error)
	DeleteAlertRule(ctx context.Context, id string) error
	MarkRuleTriggered(ctx context.Context, id string, at time.Time) (models.AlertRule, error)
	AddNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (models.Notification, error)
}

// TrainingService - курсы, соответствие обучению и правила оповещений
type TrainingService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, c models.Course) (models.Course, error)
	Compliance(ctx context.Context) (models.ComplianceReport, error)
	ListAlertRules(ctx context.Context) ([]models.AlertRule, error)
	CreateAlertRule(ctx context.Context, r models.AlertRule) (models.AlertRule, error)
	UpdateAlertRule(ctx context.Context, id string, r models.AlertRule) (models.AlertRule, error)
	DeleteAlertRule(ctx context.Context, id string) error
	EvaluateAlerts(ctx context.Context) ([]models.Notification, error)
	ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (models.Notification, error)
}

type trainingService struct {
	repo     TrainingRepository
	logger   *logrus.Logger
	required []string
}

func NewTrainingService(repo TrainingRepository, logger *logrus.Logger) TrainingService {
	return &trainingService{repo: repo, logger: logger, required: analytics.RequiredCourseIDs}
}

func (s *trainingService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"service": "training", "method": method})
}

func (s *trainingService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		s.log("ListCourses").WithError(err).Error("Failed to list courses")
		return nil, fmt.Errorf("service: could not list courses: %w", err)
	}
	return courses, nil
}

func (s *trainingService) CreateCourse(ctx context.Context, c models.Course) (models.Course, error) {
	created, err := s.repo.CreateCourse(ctx, c)
	if err != nil {
		s.log("CreateCourse").WithError(err).Warn("Failed to create course")
		return models.Course{}, fmt.Errorf("service: could not create course: %w", err)
	}
	return created, nil
}

// Compliance проверяет обязательные курсы у активных сотрудников
func (s *trainingService) Compliance(ctx context.Context) (models.ComplianceReport, error) {
	personnel, err := s.repo.ListPersonnel(ctx, models.PersonnelFilter{})
	if err != nil {
		s.log("Compliance").WithError(err).Error("Failed to list personnel")
		return models.ComplianceReport{}, fmt.Errorf("service: could not compute compliance: %w", err)
	}
	return analytics.Compliance(personnel, s.required), nil
}

func (s *trainingService) ListAlertRules(ctx context.Context) ([]models.AlertRule, error) {
	rules, err := s.repo.ListAlertRules(ctx)
	if err != nil {
		s.log("ListAlertRules").WithError(err).Error("Failed to list alert rules")
		return nil, fmt.Errorf("service: could not list alert rules: %w", err)
	}
	return rules, nil
}

func (s *trainingService) CreateAlertRule(ctx context.Context, r models.AlertRule) (models.AlertRule, error) {
	if err := validateRule(r); err != nil {
		return models.AlertRule{}, err
	}
	created, err := s.repo.CreateAlertRule(ctx, r)
	if err != nil {
		s.log("CreateAlertRule").WithError(err).Error("Failed to create alert rule")
		return models.AlertRule{}, fmt.Errorf("service: could not create alert rule: %w", err)
	}
	return created, nil
}

func (s *trainingService) UpdateAlertRule(ctx context.Context, id string, r models.AlertRule) (models.AlertRule, error) {
	if err := validateRule(r); err != nil {
		return models.AlertRule{}, err
	}
	updated, err := s.repo.UpdateAlertRule(ctx, id, r)
	if err != nil {
		s.log("UpdateAlertRule").WithField("rule_id", id).WithError(err).Warn("Failed to update alert rule")
		return models.AlertRule{}, fmt.Errorf("service: could not update alert rule: %w", err)
	}
	return updated, nil
}

func (s *trainingService) DeleteAlertRule(ctx context.Context, id string) error {
	if err := s.repo.DeleteAlertRule(ctx, id); err != nil {
		s.log("DeleteAlertRule").WithError(err).Error("Failed to delete alert rule")
		return fmt.Errorf("service: could not delete alert rule: %w", err)
	}
	return nil
}

// EvaluateAlerts сравнивает текущий процент соответствия с правилами
// и создает уведомления по сработавшим правилам
func (s *trainingService) EvaluateAlerts(ctx context.Context) ([]models.Notification, error) {
	log := s.log("EvaluateAlerts")

	report, err := s.Compliance(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.repo.ListAlertRules(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alert rules")
		return nil, fmt.Errorf("service: could not evaluate alerts: %w", err)
	}
	existing, err := s.repo.ListNotifications(ctx, false)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications")
		return nil, fmt.Errorf("service: could not evaluate alerts: %w", err)
	}

	now := s.repo.Now()
	created := make([]models.Notification, 0)
	for _, rule := range rules {
		if rule.Metric != models.MetricTrainingCompliance {
			continue
		}
		n, ok := analytics.EvaluateAlert(rule, report.CompliantPercentage, existing, now)
		if !ok {
			continue
		}
		n, err = s.repo.AddNotification(ctx, n)
		if err != nil {
			return created, fmt.Errorf("service: could not add notification: %w", err)
		}
		if _, err := s.repo.MarkRuleTriggered(ctx, rule.ID, now); err != nil {
			return created, fmt.Errorf("service: could not mark rule triggered: %w", err)
		}
		existing = append(existing, n)
		created = append(created, n)
		log.WithFields(logrus.Fields{"rule_id": rule.ID, "value": report.CompliantPercentage}).Info("Alert rule triggered")
	}
	return created, nil
}

func (s *trainingService) ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	list, err := s.repo.ListNotifications(ctx, unreadOnly)
	if err != nil {
		s.log("ListNotifications").WithError(err).Error("Failed to list notifications")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return list, nil
}

func (s *trainingService) MarkNotificationRead(ctx context.Context, id string) (models.Notification, error) {
	n, err := s.repo.MarkNotificationRead(ctx, id)
	if err != nil {
		return models.Notification{}, fmt.Errorf("service: could not mark notification read: %w", err)
	}
	return n, nil
}

func validateRule(r models.AlertRule) error {
	if r.Condition != "" && r.Condition != models.AlertConditionBelow && r.Condition != models.AlertConditionAbove {
		return fmt.Errorf("%w: unknown condition %q", ErrValidation, r.Condition)
	}
	if r.Metric != "" && r.Metric != models.MetricTrainingCompliance {
		return fmt.Errorf("%w: unknown metric %q", ErrValidation, r.Metric)
	}
	if r.Threshold < 0 || r.Threshold > 100 {
		return fmt.Errorf("%w: threshold must be between 0 and 100", ErrValidation)
	}
	return nil
}
