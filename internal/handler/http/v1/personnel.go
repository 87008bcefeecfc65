package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List personnel
// @Tags Personnel
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status"
// @Param rank query string false "Rank"
// @Param search query string false "Search by name or email"
// @Success 200 {array} models.Personnel
// @Router /personnel [get]
func (h *Handler) listPersonnel(c *gin.Context) {
	log := h.log(c, "listPersonnel")

	personnel, err := h.services.Personnel.ListPersonnel(c.Request.Context(), models.PersonnelFilter{
		Status: c.Query("status"),
		Rank:   c.Query("rank"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, personnel)
}

// @Summary Get a staff member
// @Tags Personnel
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Personnel ID"
// @Success 200 {object} models.Personnel
// @Failure 404 {object} map[string]string "Personnel not found"
// @Router /personnel/{id} [get]
func (h *Handler) getPersonnel(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getPersonnel").WithField("id", id)

	p, err := h.services.Personnel.GetPersonnel(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create a staff member
// @Tags Personnel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param personnel body CreatePersonnelRequest true "Personnel creation request"
// @Success 201 {object} models.Personnel
// @Failure 400 {object} map[string]string "Validation error"
// @Router /personnel [post]
func (h *Handler) createPersonnel(c *gin.Context) {
	var input CreatePersonnelRequest
	log := h.log(c, "createPersonnel")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Personnel.CreatePersonnel(c.Request.Context(), DTOToPersonnelModel(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a staff member
// @Tags Personnel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Personnel ID"
// @Param personnel body UpdatePersonnelRequest true "Personnel update request"
// @Success 200 {object} models.Personnel
// @Failure 404 {object} map[string]string "Personnel not found"
// @Router /personnel/{id} [put]
func (h *Handler) updatePersonnel(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updatePersonnel").WithField("id", id)

	var input UpdatePersonnelRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Personnel.UpdatePersonnel(c.Request.Context(), id, DTOToPersonnelPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a staff member
// @Tags Personnel
// @Security ApiKeyAuth
// @Param id path string true "Personnel ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Personnel not found"
// @Router /personnel/{id} [delete]
func (h *Handler) deletePersonnel(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deletePersonnel").WithField("id", id)

	if err := h.services.Personnel.DeletePersonnel(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add a training record
// @Tags Personnel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Personnel ID"
// @Param record body TrainingRecordRequest true "Completed course"
// @Success 201 {object} models.Personnel
// @Failure 404 {object} map[string]string "Personnel or course not found"
// @Router /personnel/{id}/training [post]
func (h *Handler) addTrainingRecord(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "addTrainingRecord").WithField("id", id)

	var input TrainingRecordRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Personnel.AddTrainingRecord(c.Request.Context(), id, DTOToTrainingRecord(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// @Summary List certifications expiring soon
// @Tags Personnel
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Window in days" default(30)
// @Success 200 {array} models.ExpiringCertification
// @Router /personnel/certifications/expiring [get]
func (h *Handler) expiringCertifications(c *gin.Context) {
	log := h.log(c, "expiringCertifications")

	days, err := queryInt(c, "days", 30)
	if err != nil || days < 0 {
		h.badRequest(c, "invalid days")
		return
	}

	certs, err := h.services.Personnel.ExpiringCertifications(c.Request.Context(), days)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

// @Summary List shifts
// @Tags Shifts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Shift
// @Router /shifts [get]
func (h *Handler) listShifts(c *gin.Context) {
	log := h.log(c, "listShifts")

	shifts, err := h.services.Personnel.ListShifts(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// @Summary Create a shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param shift body ShiftRequest true "Shift"
// @Success 201 {object} models.Shift
// @Router /shifts [post]
func (h *Handler) createShift(c *gin.Context) {
	var input ShiftRequest
	log := h.log(c, "createShift")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Personnel.CreateShift(c.Request.Context(), DTOToShift(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Delete a shift
// @Tags Shifts
// @Security ApiKeyAuth
// @Param id path string true "Shift ID"
// @Success 204 "No Content"
// @Router /shifts/{id} [delete]
func (h *Handler) deleteShift(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteShift").WithField("id", id)

	if err := h.services.Personnel.DeleteShift(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List exposure logs
// @Tags Exposures
// @Produce json
// @Security ApiKeyAuth
// @Param personnel_id query string false "Personnel ID"
// @Success 200 {array} models.ExposureLog
// @Router /exposures [get]
func (h *Handler) listExposures(c *gin.Context) {
	log := h.log(c, "listExposures")

	logs, err := h.services.Personnel.ListExposureLogs(c.Request.Context(), c.Query("personnel_id"))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// @Summary Record an exposure
// @Tags Exposures
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param exposure body ExposureLogRequest true "Exposure"
// @Success 201 {object} models.ExposureLog
// @Failure 404 {object} map[string]string "Personnel or incident not found"
// @Router /exposures [post]
func (h *Handler) createExposure(c *gin.Context) {
	var input ExposureLogRequest
	log := h.log(c, "createExposure")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Personnel.CreateExposureLog(c.Request.Context(), DTOToExposureLog(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
