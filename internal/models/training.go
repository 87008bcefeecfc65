package models

import "time"

type Course struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

const (
	AlertConditionBelow = "below"
	AlertConditionAbove = "above"

	MetricTrainingCompliance = "training_compliance"
)

// AlertRule - правило оповещения по метрике соответствия обучению
type AlertRule struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Metric        string     `json:"metric"`
	Condition     string     `json:"condition"`
	Threshold     float64    `json:"threshold"`
	Enabled       bool       `json:"enabled"`
	LastTriggered *time.Time `json:"last_triggered,omitempty"`
}

func (r AlertRule) Clone() AlertRule {
	out := r
	out.LastTriggered = cloneTime(r.LastTriggered)
	return out
}

// ComplianceRecord - статус обучения сотрудника
type ComplianceRecord struct {
	PersonnelID    string   `json:"personnel_id"`
	Name           string   `json:"name"`
	Compliant      bool     `json:"compliant"`
	MissingCourses []string `json:"missing_courses,omitempty"`
}

type ComplianceReport struct {
	Records             []ComplianceRecord `json:"records"`
	CompliantCount      int                `json:"compliant_count"`
	NonCompliantCount   int                `json:"non_compliant_count"`
	CompliantPercentage float64            `json:"compliant_percentage"`
}

// ExpiringCertification - сертификат, срок которого скоро истекает
type ExpiringCertification struct {
	PersonnelID   string    `json:"personnel_id"`
	PersonnelName string    `json:"personnel_name"`
	Certification string    `json:"certification"`
	ExpiresOn     time.Time `json:"expires_on"`
	DaysRemaining int       `json:"days_remaining"`
}
