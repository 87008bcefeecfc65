package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fire_ops_system/internal/config"
	"github.com/shenikar/fire_ops_system/internal/service"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает API
type Services struct {
	Incidents service.IncidentService
	Personnel service.PersonnelService
	Apparatus service.ApparatusService
	Property  service.PropertyService
	FireDues  service.FireDueService
	Billing   service.BillingService
	Budget    service.BudgetService
	Assets    service.AssetService
	Training  service.TrainingService
	Portal    service.PortalService
	Dashboard service.DashboardService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
	now      func() time.Time
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// bind разбирает тело запроса и проверяет теги validate
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// statusFor переводит ошибку сервиса в HTTP-статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrTransient):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, store.ErrConflict),
		errors.Is(err, store.ErrIncidentLocked),
		errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, store.ErrNotBillable):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidParent),
		errors.Is(err, store.ErrInvalidAssignment):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail отвечает ошибкой; внутренние ошибки наружу не показываются
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		log.WithError(err).Error("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	case http.StatusServiceUnavailable:
		log.WithError(err).Warn("Store temporarily unavailable")
		c.JSON(status, gin.H{"error": "service temporarily unavailable, retry later"})
		return
	}

	message := err.Error()
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		message = nf.Error()
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, gin.H{"error": message})
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// parseDate принимает 2006-01-02 или RFC3339
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	value := c.Query(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func paramInt(c *gin.Context, key string) (int, bool) {
	v, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, false
	}
	return v, true
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
