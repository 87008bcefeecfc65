package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/models"
)

// @Summary List apparatus
// @Tags Apparatus
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status"
// @Param type query string false "Type"
// @Param search query string false "Search by unit id or VIN"
// @Success 200 {array} models.Apparatus
// @Router /apparatus [get]
func (h *Handler) listApparatus(c *gin.Context) {
	log := h.log(c, "listApparatus")

	list, err := h.services.Apparatus.ListApparatus(c.Request.Context(), models.ApparatusFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get apparatus by ID
// @Tags Apparatus
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Apparatus ID"
// @Success 200 {object} models.Apparatus
// @Failure 404 {object} map[string]string "Apparatus not found"
// @Router /apparatus/{id} [get]
func (h *Handler) getApparatus(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getApparatus").WithField("id", id)

	a, err := h.services.Apparatus.GetApparatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Create apparatus
// @Tags Apparatus
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param apparatus body CreateApparatusRequest true "Apparatus"
// @Success 201 {object} models.Apparatus
// @Router /apparatus [post]
func (h *Handler) createApparatus(c *gin.Context) {
	var input CreateApparatusRequest
	log := h.log(c, "createApparatus")

	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.services.Apparatus.CreateApparatus(c.Request.Context(), DTOToApparatusModel(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update apparatus
// @Tags Apparatus
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Apparatus ID"
// @Param apparatus body UpdateApparatusRequest true "Apparatus update"
// @Success 200 {object} models.Apparatus
// @Router /apparatus/{id} [put]
func (h *Handler) updateApparatus(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "updateApparatus").WithField("id", id)

	var input UpdateApparatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Apparatus.UpdateApparatus(c.Request.Context(), id, DTOToApparatusPatch(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete apparatus
// @Tags Apparatus
// @Security ApiKeyAuth
// @Param id path string true "Apparatus ID"
// @Success 204 "No Content"
// @Router /apparatus/{id} [delete]
func (h *Handler) deleteApparatus(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "deleteApparatus").WithField("id", id)

	if err := h.services.Apparatus.DeleteApparatus(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record apparatus vitals
// @Description Adds a mileage and engine hours reading; the latest reading updates the apparatus counters.
// @Tags Apparatus
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Apparatus ID"
// @Param vitals body VitalsRequest true "Vitals reading"
// @Success 201 {object} models.Apparatus
// @Router /apparatus/{id}/vitals [post]
func (h *Handler) addVitals(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "addVitals").WithField("id", id)

	var input VitalsRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.services.Apparatus.AddVitals(c.Request.Context(), id, DTOToVitals(input))
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}
