package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardSummary
// @Router /dashboard/summary [get]
func (h *Handler) dashboardSummary(c *gin.Context) {
	log := h.log(c, "dashboardSummary")

	summary, err := h.services.Dashboard.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get dashboard layout
// @Description Layout of the user from X-User-ID; the default layout when none is saved.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string false "User ID"
// @Success 200 {object} models.DashboardLayout
// @Router /dashboard/layout [get]
func (h *Handler) getLayout(c *gin.Context) {
	userID := audit.ActorFromContext(c.Request.Context())
	log := h.log(c, "getLayout").WithField("user_id", userID)

	layout, err := h.services.Dashboard.GetLayout(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

// @Summary Save dashboard layout
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string false "User ID"
// @Param layout body DashboardLayoutRequest true "Layout"
// @Success 200 {object} models.DashboardLayout
// @Failure 422 {object} map[string]string "Unknown or duplicate widget"
// @Router /dashboard/layout [put]
func (h *Handler) saveLayout(c *gin.Context) {
	userID := audit.ActorFromContext(c.Request.Context())
	log := h.log(c, "saveLayout").WithField("user_id", userID)

	var input DashboardLayoutRequest
	if !h.bind(c, log, &input) {
		return
	}

	saved, err := h.services.Dashboard.SaveLayout(c.Request.Context(), userID, DTOToLayout(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary Reset dashboard layout
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string false "User ID"
// @Success 200 {object} models.DashboardLayout
// @Router /dashboard/layout [delete]
func (h *Handler) resetLayout(c *gin.Context) {
	userID := audit.ActorFromContext(c.Request.Context())
	log := h.log(c, "resetLayout").WithField("user_id", userID)

	layout, err := h.services.Dashboard.ResetLayout(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

// @Summary Audit log
// @Description Newest entries first.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string false "User ID"
// @Param target query string false "Target type"
// @Param target_id query string false "Target ID"
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {array} models.AuditLogEntry
// @Router /audit-log [get]
func (h *Handler) auditLog(c *gin.Context) {
	log := h.log(c, "auditLog")

	limit, err := queryInt(c, "limit", 100)
	if err != nil || limit < 0 {
		h.badRequest(c, "invalid limit")
		return
	}

	entries, err := h.services.Dashboard.AuditLog(c.Request.Context(), models.AuditFilter{
		UserID:   c.Query("user_id"),
		Target:   c.Query("target"),
		TargetID: c.Query("target_id"),
		Limit:    limit,
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
