package models

// DashboardLayout - порядок и видимость виджетов панели пользователя
type DashboardLayout struct {
	WidgetOrder   []string `json:"widgetOrder"`
	HiddenWidgets []string `json:"hiddenWidgets"`
}

func DefaultDashboardLayout() DashboardLayout {
	return DashboardLayout{
		WidgetOrder:   []string{"incidents", "apparatus", "personnel", "fireDues", "financials", "budget", "training"},
		HiddenWidgets: []string{},
	}
}

type BudgetStats struct {
	FiscalYear         int     `json:"fiscal_year"`
	TotalBudget        float64 `json:"total_budget"`
	TotalSpent         float64 `json:"total_spent"`
	Remaining          float64 `json:"remaining"`
	SpentPercentage    float64 `json:"spent_percentage"`
	FiscalYearProgress float64 `json:"fiscal_year_progress"`
	ProjectedSpending  float64 `json:"projected_spending"`
	Pacing             string  `json:"pacing"`
}

type FireDuesSummary struct {
	TotalOutstanding float64 `json:"total_outstanding"`
	OutstandingCount int     `json:"outstanding_count"`
	OverdueAmount    float64 `json:"overdue_amount"`
	OverdueCount     int     `json:"overdue_count"`
	CollectionRate   float64 `json:"collection_rate"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type FinancialDashboard struct {
	Outstanding    float64          `json:"outstanding"`
	CollectedYTD   float64          `json:"collected_ytd"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	StatusCounts   map[string]int   `json:"status_counts"`
}

type IncidentAnalytics struct {
	Total                  int            `json:"total"`
	ByType                 map[string]int `json:"by_type"`
	ByStatus               map[string]int `json:"by_status"`
	ByMonth                [12]int        `json:"by_month"`
	AvgRespondingPersonnel float64        `json:"avg_responding_personnel"`
	AvgRespondingApparatus float64        `json:"avg_responding_apparatus"`
}

// DashboardSummary - сводка для главной панели
type DashboardSummary struct {
	OpenIncidents      int             `json:"open_incidents"`
	ActivePersonnel    int             `json:"active_personnel"`
	ApparatusInService int             `json:"apparatus_in_service"`
	FireDues           FireDuesSummary `json:"fire_dues"`
	UnreadAlerts       int             `json:"unread_alerts"`
}
