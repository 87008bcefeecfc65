package analytics

import (
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestFireDuesSummary_CollectionRate(t *testing.T) {
	now := date(2024, time.June, 1)
	dues := make([]models.FireDue, 0, 11)
	for i := 0; i < 10; i++ {
		status := models.FireDueStatusUnpaid
		if i < 4 {
			status = models.FireDueStatusPaid
		} else if i < 6 {
			status = models.FireDueStatusOverdue
		}
		dues = append(dues, models.FireDue{Year: 2024, Amount: 100, Status: status})
	}
	// сбор прошлого года не влияет на долю оплаты
	dues = append(dues, models.FireDue{Year: 2023, Amount: 100, Status: models.FireDueStatusOverdue})

	summary := FireDuesSummary(dues, now)

	assert.Equal(t, 40.0, summary.CollectionRate)
	assert.Equal(t, 7, summary.OutstandingCount)
	assert.Equal(t, 700.0, summary.TotalOutstanding)
	assert.Equal(t, 3, summary.OverdueCount)
	assert.Equal(t, 300.0, summary.OverdueAmount)
}

func TestFireDuesSummary_NoDuesThisYear(t *testing.T) {
	summary := FireDuesSummary(nil, date(2024, time.June, 1))

	assert.Equal(t, 0.0, summary.CollectionRate)
}

func TestFiscalYearProgress(t *testing.T) {
	tests := []struct {
		name string
		year int
		now  time.Time
		want float64
	}{
		{name: "first day is clamped to one day", year: 2025, now: date(2025, time.January, 1), want: 100.0 / 365},
		{name: "mid year", year: 2025, now: date(2025, time.July, 2), want: 183.0 / 365 * 100},
		{name: "leap year end is capped", year: 2024, now: date(2024, time.December, 31), want: 100},
		{name: "past year", year: 2023, now: date(2024, time.March, 1), want: 100},
		{name: "future year", year: 2026, now: date(2025, time.March, 1), want: 100.0 / 365},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FiscalYearProgress(tt.year, tt.now), 1e-9)
		})
	}
}

func TestBudgetStats_Pacing(t *testing.T) {
	now := date(2025, time.July, 2) // ~50.1% года
	tests := []struct {
		name  string
		spent float64
		want  string
	}{
		{name: "over pace", spent: 600, want: PacingOver},
		{name: "under pace", spent: 400, want: PacingUnder},
		{name: "on track", spent: 520, want: PacingOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := BudgetStats(models.Budget{FiscalYear: 2025, TotalBudget: 1000, TotalSpent: tt.spent}, now)
			assert.Equal(t, tt.want, stats.Pacing)
			assert.Equal(t, 1000-tt.spent, stats.Remaining)
			assert.InDelta(t, tt.spent/10, stats.SpentPercentage, 1e-9)
		})
	}
}

func TestBudgetStats_ProjectionIsFiniteOnDayOne(t *testing.T) {
	stats := BudgetStats(models.Budget{FiscalYear: 2025, TotalBudget: 1000, TotalSpent: 10}, date(2025, time.January, 1))

	assert.InDelta(t, 3650.0, stats.ProjectedSpending, 1e-6)
}

func TestBudgetStats_ZeroBudget(t *testing.T) {
	stats := BudgetStats(models.Budget{FiscalYear: 2025}, date(2025, time.March, 1))

	assert.Equal(t, 0.0, stats.SpentPercentage)
	assert.Equal(t, 0.0, stats.ProjectedSpending)
}

func TestFinancialDashboard(t *testing.T) {
	now := date(2024, time.August, 10)
	feb := date(2024, time.February, 3)
	jul := date(2024, time.July, 20)
	lastYear := date(2023, time.March, 1)
	invoices := []models.Invoice{
		{Status: models.InvoiceStatusSent, TotalAmount: 450},
		{Status: models.InvoiceStatusOverdue, TotalAmount: 1200},
		{Status: models.InvoiceStatusDraft, TotalAmount: 350},
		{Status: models.InvoiceStatusPaid, TotalAmount: 150, PaidDate: &feb},
		{Status: models.InvoiceStatusPaid, TotalAmount: 450, PaidDate: &jul},
		{Status: models.InvoiceStatusPaid, TotalAmount: 999, PaidDate: &lastYear},
	}

	dash := FinancialDashboard(invoices, now)

	assert.Equal(t, 1650.0, dash.Outstanding)
	assert.Equal(t, 600.0, dash.CollectedYTD)
	require.Len(t, dash.MonthlyRevenue, 6)
	assert.Equal(t, "Feb", dash.MonthlyRevenue[1].Month)
	assert.Equal(t, 150.0, dash.MonthlyRevenue[1].Revenue)
	assert.Equal(t, 0.0, dash.MonthlyRevenue[2].Revenue)
	assert.Equal(t, 3, dash.StatusCounts[models.InvoiceStatusPaid])
	assert.Equal(t, 1, dash.StatusCounts[models.InvoiceStatusDraft])
}

func TestCompliance(t *testing.T) {
	required := []string{"c1", "c2"}
	personnel := []models.Personnel{
		{ID: "p1", Name: "Full", Status: models.PersonnelStatusActive, TrainingHistory: []models.TrainingRecord{{CourseID: "c1"}, {CourseID: "c2"}, {CourseID: "c9"}}},
		{ID: "p2", Name: "Partial", Status: models.PersonnelStatusActive, TrainingHistory: []models.TrainingRecord{{CourseID: "c2"}}},
		{ID: "p3", Name: "Gone", Status: models.PersonnelStatusInactive},
	}

	report := Compliance(personnel, required)

	require.Len(t, report.Records, 2)
	assert.Equal(t, 1, report.CompliantCount)
	assert.Equal(t, 1, report.NonCompliantCount)
	assert.Equal(t, 50.0, report.CompliantPercentage)
	assert.Equal(t, []string{"c1"}, report.Records[1].MissingCourses)
}

func TestEvaluateAlert(t *testing.T) {
	now := date(2024, time.May, 1)
	recent := now.Add(-30 * time.Minute)
	stale := now.Add(-2 * time.Hour)
	rule := models.AlertRule{ID: "rule-1", Name: "Low compliance", Condition: models.AlertConditionBelow, Threshold: 80, Enabled: true}

	n, ok := EvaluateAlert(rule, 60, nil, now)
	require.True(t, ok)
	assert.Equal(t, models.NotificationAlert, n.Type)
	assert.Equal(t, now, n.Timestamp)
	assert.Equal(t, "Alert: Low compliance - training compliance is 60.0% (below 80.0%)", n.Message)

	_, ok = EvaluateAlert(rule, 90, nil, now)
	assert.False(t, ok, "threshold not breached")

	_, ok = EvaluateAlert(rule, 60, []models.Notification{{Message: n.Message}}, now)
	assert.False(t, ok, "identical message exists")

	withRecent := rule
	withRecent.LastTriggered = &recent
	_, ok = EvaluateAlert(withRecent, 60, nil, now)
	assert.False(t, ok, "triggered within the last hour")

	withStale := rule
	withStale.LastTriggered = &stale
	_, ok = EvaluateAlert(withStale, 60, nil, now)
	assert.True(t, ok)

	disabled := rule
	disabled.Enabled = false
	_, ok = EvaluateAlert(disabled, 60, nil, now)
	assert.False(t, ok)

	above := rule
	above.Condition = models.AlertConditionAbove
	_, ok = EvaluateAlert(above, 95, nil, now)
	assert.True(t, ok)
}

func TestIncidentAnalytics(t *testing.T) {
	now := date(2024, time.June, 1)
	incidents := []models.Incident{
		{Type: "MVA", Status: models.IncidentStatusLocked, Date: date(2024, time.January, 5), RespondingPersonnelIDs: []string{"a", "b"}, RespondingApparatusIDs: []string{"e1"}},
		{Type: "MVA", Status: models.IncidentStatusInProgress, Date: date(2024, time.March, 9), RespondingPersonnelIDs: []string{"a", "b", "c", "d"}},
		{Type: "Hazmat", Status: models.IncidentStatusInProgress, Date: date(2023, time.March, 9)},
	}

	got := IncidentAnalytics(incidents, now)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.ByType["MVA"])
	assert.Equal(t, 2, got.ByStatus[models.IncidentStatusInProgress])
	assert.Equal(t, 1, got.ByMonth[0])
	assert.Equal(t, 1, got.ByMonth[2])
	assert.InDelta(t, 2.0, got.AvgRespondingPersonnel, 1e-9)
	assert.InDelta(t, 1.0/3, got.AvgRespondingApparatus, 1e-9)
}

func TestExpiringCertifications(t *testing.T) {
	now := date(2024, time.June, 1)
	soon := now.AddDate(0, 0, 10)
	expired := now.AddDate(0, 0, -3)
	later := now.AddDate(0, 0, 200)
	personnel := []models.Personnel{
		{ID: "p1", Name: "A", Certifications: []models.Certification{{Name: "EMT-B", ExpiresOn: &soon}, {Name: "FF II", ExpiresOn: &later}}},
		{ID: "p2", Name: "B", Certifications: []models.Certification{{Name: "Hazmat Ops", ExpiresOn: &expired}, {Name: "Driver"}}},
	}

	got := ExpiringCertifications(personnel, now, 30)

	require.Len(t, got, 2)
	assert.Equal(t, "Hazmat Ops", got[0].Certification)
	assert.Equal(t, -3, got[0].DaysRemaining)
	assert.Equal(t, "EMT-B", got[1].Certification)
	assert.Equal(t, 10, got[1].DaysRemaining)
}
