package store

import (
	"context"
	"slices"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// Snapshot - полная копия состояния хранилища
type Snapshot struct {
	Incidents     []models.Incident               `json:"incidents"`
	Personnel     []models.Personnel              `json:"personnel"`
	Shifts        []models.Shift                  `json:"shifts"`
	Exposures     []models.ExposureLog            `json:"exposures"`
	Apparatus     []models.Apparatus              `json:"apparatus"`
	Owners        []models.Owner                  `json:"owners"`
	Properties    []models.Property               `json:"properties"`
	FireDues      []models.FireDue                `json:"fire_dues"`
	Invoices      []models.Invoice                `json:"invoices"`
	Budgets       []models.Budget                 `json:"budgets"`
	Assets        []models.Asset                  `json:"assets"`
	AuditLog      []models.AuditLogEntry          `json:"audit_log"`
	Notifications []models.Notification           `json:"notifications"`
	Courses       []models.Course                 `json:"courses"`
	AlertRules    []models.AlertRule              `json:"alert_rules"`
	Citizens      []models.Citizen                `json:"citizens"`
	Forgiveness   []models.BillForgivenessRequest `json:"forgiveness_requests"`
}

// Export возвращает копию всех таблиц
func (s *Store) Export(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Incidents:     cloneAll(s.incidents, models.Incident.Clone),
		Personnel:     cloneAll(s.personnel, models.Personnel.Clone),
		Shifts:        cloneAll(s.shifts, models.Shift.Clone),
		Exposures:     slices.Clone(s.exposures),
		Apparatus:     cloneAll(s.apparatus, models.Apparatus.Clone),
		Owners:        slices.Clone(s.owners),
		Properties:    cloneAll(s.properties, models.Property.Clone),
		FireDues:      cloneAll(s.fireDues, models.FireDue.Clone),
		Invoices:      cloneAll(s.invoices, models.Invoice.Clone),
		Budgets:       cloneAll(s.budgets, models.Budget.Clone),
		Assets:        cloneAll(s.assets, models.Asset.Clone),
		AuditLog:      cloneAll(s.auditLog, models.AuditLogEntry.Clone),
		Notifications: slices.Clone(s.notifications),
		Courses:       slices.Clone(s.courses),
		AlertRules:    cloneAll(s.alertRules, models.AlertRule.Clone),
		Citizens:      cloneAll(s.citizens, models.Citizen.Clone),
		Forgiveness:   cloneAll(s.forgiveness, models.BillForgivenessRequest.Clone),
	}, nil
}

// Import заменяет состояние хранилища снимком.
// Итоги бюджетов пересчитываются, счетчики id сдвигаются за импортированные значения.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = cloneAll(snap.Incidents, models.Incident.Clone)
	s.personnel = cloneAll(snap.Personnel, models.Personnel.Clone)
	s.shifts = cloneAll(snap.Shifts, models.Shift.Clone)
	s.exposures = slices.Clone(snap.Exposures)
	s.apparatus = cloneAll(snap.Apparatus, models.Apparatus.Clone)
	s.owners = slices.Clone(snap.Owners)
	s.properties = cloneAll(snap.Properties, models.Property.Clone)
	s.fireDues = cloneAll(snap.FireDues, models.FireDue.Clone)
	s.invoices = cloneAll(snap.Invoices, models.Invoice.Clone)
	s.budgets = cloneAll(snap.Budgets, models.Budget.Clone)
	s.assets = cloneAll(snap.Assets, models.Asset.Clone)
	s.auditLog = cloneAll(snap.AuditLog, models.AuditLogEntry.Clone)
	s.notifications = slices.Clone(snap.Notifications)
	s.courses = slices.Clone(snap.Courses)
	s.alertRules = cloneAll(snap.AlertRules, models.AlertRule.Clone)
	s.citizens = cloneAll(snap.Citizens, models.Citizen.Clone)
	s.forgiveness = cloneAll(snap.Forgiveness, models.BillForgivenessRequest.Clone)

	for i := range s.budgets {
		recomputeTotals(&s.budgets[i])
	}
	s.observeAll()
	return nil
}

// observeAll вызывается под s.mu
func (s *Store) observeAll() {
	for _, x := range s.incidents {
		s.observeID(x.ID)
	}
	for _, x := range s.personnel {
		s.observeID(x.ID)
	}
	for _, x := range s.shifts {
		s.observeID(x.ID)
	}
	for _, x := range s.exposures {
		s.observeID(x.ID)
	}
	for _, x := range s.apparatus {
		s.observeID(x.ID)
	}
	for _, x := range s.owners {
		s.observeID(x.ID)
	}
	for _, x := range s.properties {
		s.observeID(x.ID)
		if x.PreIncidentPlan != nil {
			s.observeID(x.PreIncidentPlan.ID)
		}
	}
	for _, x := range s.fireDues {
		s.observeID(x.ID)
	}
	for _, x := range s.invoices {
		s.observeID(x.ID)
	}
	for _, b := range s.budgets {
		for _, li := range b.LineItems {
			s.observeID(li.ID)
		}
	}
	for _, x := range s.assets {
		s.observeID(x.ID)
	}
	for _, x := range s.auditLog {
		s.observeID(x.ID)
	}
	for _, x := range s.notifications {
		s.observeID(x.ID)
	}
	for _, x := range s.courses {
		s.observeID(x.ID)
	}
	for _, x := range s.alertRules {
		s.observeID(x.ID)
	}
	for _, x := range s.citizens {
		s.observeID(x.ID)
	}
	for _, x := range s.forgiveness {
		s.observeID(x.ID)
	}
}
