// Package analytics считает производные показатели по записям хранилища.
// Все функции чистые: текущее время передается явно.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

const (
	PacingOver    = "Over Pace"
	PacingUnder   = "Under Pace"
	PacingOnTrack = "On Track"

	daysInFiscalYear = 365
	pacingTolerance  = 5.0

	// alertCooldown - окно, в течение которого правило не срабатывает повторно
	alertCooldown = time.Hour
)

// RequiredCourseIDs - курсы, обязательные для каждого активного сотрудника
var RequiredCourseIDs = []string{"course-cpr", "course-hazmat", "course-nims"}

var monthLabels = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// FiscalYearProgress возвращает долю прошедшего финансового года в процентах.
// Число прошедших дней ограничено диапазоном [1, 365], прошедший год дает 100.
func FiscalYearProgress(fiscalYear int, now time.Time) float64 {
	switch {
	case now.Year() > fiscalYear:
		return 100
	case now.Year() < fiscalYear:
		return 1.0 / daysInFiscalYear * 100
	}
	elapsed := now.YearDay()
	if elapsed < 1 {
		elapsed = 1
	}
	if elapsed > daysInFiscalYear {
		elapsed = daysInFiscalYear
	}
	return float64(elapsed) / daysInFiscalYear * 100
}

func BudgetStats(b models.Budget, now time.Time) models.BudgetStats {
	stats := models.BudgetStats{
		FiscalYear:         b.FiscalYear,
		TotalBudget:        b.TotalBudget,
		TotalSpent:         b.TotalSpent,
		Remaining:          b.TotalBudget - b.TotalSpent,
		FiscalYearProgress: FiscalYearProgress(b.FiscalYear, now),
	}
	if b.TotalBudget > 0 {
		stats.SpentPercentage = b.TotalSpent / b.TotalBudget * 100
	}
	stats.ProjectedSpending = b.TotalSpent / stats.FiscalYearProgress * 100

	switch diff := stats.SpentPercentage - stats.FiscalYearProgress; {
	case diff > pacingTolerance:
		stats.Pacing = PacingOver
	case diff < -pacingTolerance:
		stats.Pacing = PacingUnder
	default:
		stats.Pacing = PacingOnTrack
	}
	return stats
}

// FireDuesSummary считает задолженность и долю сборов текущего года, оплаченных на дату now
func FireDuesSummary(dues []models.FireDue, now time.Time) models.FireDuesSummary {
	var (
		summary   models.FireDuesSummary
		thisYear  int
		paidCount int
	)
	for _, d := range dues {
		switch d.Status {
		case models.FireDueStatusUnpaid:
			summary.TotalOutstanding += d.Amount
			summary.OutstandingCount++
		case models.FireDueStatusOverdue:
			summary.TotalOutstanding += d.Amount
			summary.OutstandingCount++
			summary.OverdueAmount += d.Amount
			summary.OverdueCount++
		}
		if d.Year == now.Year() {
			thisYear++
			if d.Status == models.FireDueStatusPaid {
				paidCount++
			}
		}
	}
	if thisYear > 0 {
		summary.CollectionRate = float64(paidCount) / float64(thisYear) * 100
	}
	return summary
}

// FinancialDashboard агрегирует счета: задолженность, поступления с начала года
// и выручку по месяцам января-июня текущего года
func FinancialDashboard(invoices []models.Invoice, now time.Time) models.FinancialDashboard {
	dash := models.FinancialDashboard{
		MonthlyRevenue: make([]models.MonthlyRevenue, len(monthLabels)),
		StatusCounts:   make(map[string]int),
	}
	for i, label := range monthLabels {
		dash.MonthlyRevenue[i].Month = label
	}
	for _, inv := range invoices {
		dash.StatusCounts[inv.Status]++
		switch inv.Status {
		case models.InvoiceStatusSent, models.InvoiceStatusOverdue:
			dash.Outstanding += inv.TotalAmount
		case models.InvoiceStatusPaid:
			if inv.PaidDate == nil || inv.PaidDate.Year() != now.Year() {
				continue
			}
			dash.CollectedYTD += inv.TotalAmount
			if m := int(inv.PaidDate.Month()) - 1; m < len(monthLabels) {
				dash.MonthlyRevenue[m].Revenue += inv.TotalAmount
			}
		}
	}
	return dash
}

// Compliance проверяет пройденные курсы активных сотрудников против списка обязательных
func Compliance(personnel []models.Personnel, required []string) models.ComplianceReport {
	report := models.ComplianceReport{Records: make([]models.ComplianceRecord, 0, len(personnel))}
	for _, p := range personnel {
		if p.Status != models.PersonnelStatusActive {
			continue
		}
		done := p.CompletedCourseIDs()
		rec := models.ComplianceRecord{PersonnelID: p.ID, Name: p.Name, Compliant: true}
		for _, id := range required {
			if _, ok := done[id]; !ok {
				rec.Compliant = false
				rec.MissingCourses = append(rec.MissingCourses, id)
			}
		}
		if rec.Compliant {
			report.CompliantCount++
		} else {
			report.NonCompliantCount++
		}
		report.Records = append(report.Records, rec)
	}
	if total := len(report.Records); total > 0 {
		report.CompliantPercentage = float64(report.CompliantCount) / float64(total) * 100
	}
	return report
}

// AlertMessage - текст уведомления о срабатывании правила
func AlertMessage(rule models.AlertRule, value float64) string {
	return fmt.Sprintf("Alert: %s - training compliance is %.1f%% (%s %.1f%%)",
		rule.Name, value, rule.Condition, rule.Threshold)
}

// EvaluateAlert решает, нужно ли новое уведомление по правилу.
// Уведомление не создается, если такое же сообщение уже есть
// или правило срабатывало меньше часа назад.
func EvaluateAlert(rule models.AlertRule, value float64, existing []models.Notification, now time.Time) (models.Notification, bool) {
	if !rule.Enabled {
		return models.Notification{}, false
	}
	var breached bool
	switch rule.Condition {
	case models.AlertConditionBelow:
		breached = value < rule.Threshold
	case models.AlertConditionAbove:
		breached = value > rule.Threshold
	}
	if !breached {
		return models.Notification{}, false
	}
	if rule.LastTriggered != nil && now.Sub(*rule.LastTriggered) < alertCooldown {
		return models.Notification{}, false
	}
	msg := AlertMessage(rule, value)
	for _, n := range existing {
		if n.Message == msg {
			return models.Notification{}, false
		}
	}
	return models.Notification{
		Timestamp: now,
		Type:      models.NotificationAlert,
		Message:   msg,
	}, true
}

// IncidentAnalytics - разбивка инцидентов по типу, статусу и месяцам года now
func IncidentAnalytics(incidents []models.Incident, now time.Time) models.IncidentAnalytics {
	out := models.IncidentAnalytics{
		Total:    len(incidents),
		ByType:   make(map[string]int),
		ByStatus: make(map[string]int),
	}
	var personnel, apparatus int
	for _, inc := range incidents {
		out.ByType[inc.Type]++
		out.ByStatus[inc.Status]++
		if inc.Date.Year() == now.Year() {
			out.ByMonth[inc.Date.Month()-1]++
		}
		personnel += len(inc.RespondingPersonnelIDs)
		apparatus += len(inc.RespondingApparatusIDs)
	}
	if out.Total > 0 {
		out.AvgRespondingPersonnel = float64(personnel) / float64(out.Total)
		out.AvgRespondingApparatus = float64(apparatus) / float64(out.Total)
	}
	return out
}

// ExpiringCertifications возвращает сертификаты, истекающие в ближайшие withinDays дней,
// включая уже просроченные; сначала ближайшие
func ExpiringCertifications(personnel []models.Personnel, now time.Time, withinDays int) []models.ExpiringCertification {
	limit := now.AddDate(0, 0, withinDays)
	out := make([]models.ExpiringCertification, 0)
	for _, p := range personnel {
		for _, c := range p.Certifications {
			if c.ExpiresOn == nil || c.ExpiresOn.After(limit) {
				continue
			}
			out = append(out, models.ExpiringCertification{
				PersonnelID:   p.ID,
				PersonnelName: p.Name,
				Certification: c.Name,
				ExpiresOn:     *c.ExpiresOn,
				DaysRemaining: int(c.ExpiresOn.Sub(now).Hours() / 24),
			})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].ExpiresOn.Before(out[b].ExpiresOn)
	})
	return out
}
