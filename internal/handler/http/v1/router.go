package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Портал жителей и health-check доступны без API-ключа.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(ActorMiddleware())

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	portal := api.Group("/portal")
	{
		portal.GET("/citizens/:id", h.getCitizen)
		portal.GET("/citizens/:id/dues", h.citizenDues)
		portal.GET("/citizens/:id/forgiveness-requests", h.citizenForgivenessRequests)
		portal.POST("/citizens/:id/forgiveness-requests", h.submitForgivenessRequest)
	}

	secured := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := secured.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/analytics", h.incidentAnalytics)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/lock", h.lockIncident)
	}

	personnel := secured.Group("/personnel")
	{
		personnel.GET("", h.listPersonnel)
		personnel.POST("", h.createPersonnel)
		personnel.GET("/certifications/expiring", h.expiringCertifications)
		personnel.GET("/:id", h.getPersonnel)
		personnel.PUT("/:id", h.updatePersonnel)
		personnel.DELETE("/:id", h.deletePersonnel)
		personnel.POST("/:id/training", h.addTrainingRecord)
	}

	secured.GET("/shifts", h.listShifts)
	secured.POST("/shifts", h.createShift)
	secured.DELETE("/shifts/:id", h.deleteShift)

	secured.GET("/exposures", h.listExposures)
	secured.POST("/exposures", h.createExposure)

	apparatus := secured.Group("/apparatus")
	{
		apparatus.GET("", h.listApparatus)
		apparatus.POST("", h.createApparatus)
		apparatus.GET("/:id", h.getApparatus)
		apparatus.PUT("/:id", h.updateApparatus)
		apparatus.DELETE("/:id", h.deleteApparatus)
		apparatus.POST("/:id/vitals", h.addVitals)
	}

	owners := secured.Group("/owners")
	{
		owners.GET("", h.listOwners)
		owners.POST("", h.createOwner)
		owners.GET("/:id", h.getOwner)
		owners.PUT("/:id", h.updateOwner)
		owners.DELETE("/:id", h.deleteOwner)
	}

	properties := secured.Group("/properties")
	{
		properties.GET("", h.listProperties)
		properties.POST("", h.createProperty)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
		properties.PUT("/:id/pre-incident-plan", h.setPreIncidentPlan)
		properties.DELETE("/:id/pre-incident-plan", h.removePreIncidentPlan)
	}

	dues := secured.Group("/fire-dues")
	{
		dues.GET("", h.listFireDues)
		dues.POST("", h.createFireDue)
		dues.GET("/details", h.listFireDuesWithDetails)
		dues.GET("/summary", h.fireDuesSummary)
		dues.POST("/bulk-pay", h.bulkPayFireDues)
		dues.POST("/generate", h.generateFireDues)
		dues.GET("/:id", h.getFireDue)
		dues.PUT("/:id", h.updateFireDue)
		dues.DELETE("/:id", h.deleteFireDue)
		dues.POST("/:id/pay", h.payFireDue)
	}

	invoices := secured.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.generateInvoice)
		invoices.GET("/billable-incidents", h.listBillableIncidents)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id/status", h.updateInvoiceStatus)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
	secured.GET("/financials", h.financialDashboard)

	budgets := secured.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/:year", h.getBudget)
		budgets.GET("/:year/stats", h.budgetStats)
		budgets.POST("/:year/items", h.addBudgetLineItem)
		budgets.PUT("/:year/items/:itemId", h.updateBudgetLineItem)
		budgets.DELETE("/:year/items/:itemId", h.deleteBudgetLineItem)
		budgets.POST("/:year/items/:itemId/expenses", h.recordExpense)
	}

	assets := secured.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("", h.createAsset)
		assets.GET("/:id", h.getAsset)
		assets.GET("/:id/components", h.listComponents)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
		assets.POST("/:id/assign", h.assignAsset)
	}

	training := secured.Group("/training")
	{
		training.GET("/courses", h.listCourses)
		training.POST("/courses", h.createCourse)
		training.GET("/compliance", h.trainingCompliance)
	}

	alerts := secured.Group("/alerts")
	{
		alerts.GET("/rules", h.listAlertRules)
		alerts.POST("/rules", h.createAlertRule)
		alerts.PUT("/rules/:id", h.updateAlertRule)
		alerts.DELETE("/rules/:id", h.deleteAlertRule)
		alerts.POST("/evaluate", h.evaluateAlerts)
	}
	secured.GET("/notifications", h.listNotifications)
	secured.POST("/notifications/:id/read", h.markNotificationRead)

	secured.GET("/citizens", h.listCitizens)
	secured.POST("/citizens", h.createCitizen)
	secured.GET("/forgiveness-requests/pending", h.pendingForgivenessRequests)
	secured.POST("/forgiveness-requests/:id/resolve", h.resolveForgivenessRequest)

	dashboard := secured.Group("/dashboard")
	{
		dashboard.GET("/summary", h.dashboardSummary)
		dashboard.GET("/layout", h.getLayout)
		dashboard.PUT("/layout", h.saveLayout)
		dashboard.DELETE("/layout", h.resetLayout)
	}
	secured.GET("/audit-log", h.auditLog)

	reports := secured.Group("/reports")
	{
		reports.GET("/fire-dues.csv", h.fireDuesReport(formatCSV))
		reports.GET("/fire-dues.xlsx", h.fireDuesReport(formatXLSX))
		reports.GET("/incidents.csv", h.incidentsReport(formatCSV))
		reports.GET("/incidents.xlsx", h.incidentsReport(formatXLSX))
		reports.GET("/invoices.csv", h.invoicesReport(formatCSV))
		reports.GET("/invoices.xlsx", h.invoicesReport(formatXLSX))
	}
}
