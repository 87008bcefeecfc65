package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List courses
// @Tags Training
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Course
// @Router /training/courses [get]
func (h *Handler) listCourses(c *gin.Context) {
	log := h.log(c, "listCourses")

	courses, err := h.services.Training.ListCourses(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// @Summary Create course
// @Tags Training
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param course body CourseRequest true "Course"
// @Success 201 {object} models.Course
// @Router /training/courses [post]
func (h *Handler) createCourse(c *gin.Context) {
	var input CourseRequest
	log := h.log(c, "createCourse")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Training.CreateCourse(c.Request.Context(), DTOToCourse(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Training compliance
// @Description Share of active staff who completed every required course.
// @Tags Training
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ComplianceReport
// @Router /training/compliance [get]
func (h *Handler) trainingCompliance(c *gin.Context) {
	log := h.log(c, "trainingCompliance")

	report, err := h.services.Training.Compliance(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary List alert rules
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.AlertRule
// @Router /alerts/rules [get]
func (h *Handler) listAlertRules(c *gin.Context) {
	log := h.log(c, "listAlertRules")

	rules, err := h.services.Training.ListAlertRules(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// @Summary Create alert rule
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param rule body AlertRuleRequest true "Alert rule"
// @Success 201 {object} models.AlertRule
// @Router /alerts/rules [post]
func (h *Handler) createAlertRule(c *gin.Context) {
	var input AlertRuleRequest
	log := h.log(c, "createAlertRule")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Training.CreateAlertRule(c.Request.Context(), DTOToAlertRule(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update alert rule
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rule ID"
// @Param rule body AlertRuleRequest true "Alert rule"
// @Success 200 {object} models.AlertRule
// @Router /alerts/rules/{id} [put]
func (h *Handler) updateAlertRule(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateAlertRule").WithField("id", id)

	var input AlertRuleRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Training.UpdateAlertRule(c.Request.Context(), id, DTOToAlertRule(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete alert rule
// @Tags Alerts
// @Security ApiKeyAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Router /alerts/rules/{id} [delete]
func (h *Handler) deleteAlertRule(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteAlertRule").WithField("id", id)

	if err := h.services.Training.DeleteAlertRule(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Evaluate alert rules
// @Description Evaluates enabled rules and returns the notifications created by this run.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Notification
// @Router /alerts/evaluate [post]
func (h *Handler) evaluateAlerts(c *gin.Context) {
	log := h.log(c, "evaluateAlerts")

	created, err := h.services.Training.EvaluateAlerts(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary List notifications
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.log(c, "listNotifications")

	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "invalid unread")
			return
		}
		unreadOnly = v
	}

	notifications, err := h.services.Training.ListNotifications(c.Request.Context(), unreadOnly)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Mark notification read
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "markNotificationRead").WithField("id", id)

	n, err := h.services.Training.MarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
