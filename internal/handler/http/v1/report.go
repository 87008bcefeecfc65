package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/export"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type reportFormat string

const (
	formatCSV  reportFormat = "csv"
	formatXLSX reportFormat = "xlsx"
)

// writeReport отдает таблицу файлом; имя файла содержит текущую дату
func (h *Handler) writeReport(c *gin.Context, log *logrus.Entry, table export.Table, name string, format reportFormat) {
	filename := fmt.Sprintf("%s-%s.%s", name, h.today(), format)

	var buf bytes.Buffer
	contentType := csvContentType
	switch format {
	case formatXLSX:
		contentType = xlsxContentType
		if err := table.WriteXLSX(&buf, name); err != nil {
			h.fail(c, log, err)
			return
		}
	default:
		if err := table.WriteCSV(&buf); err != nil {
			h.fail(c, log, err)
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *Handler) today() string {
	return h.now().Format("2006-01-02")
}

// @Summary Fire dues report
// @Description Fire dues with property details as CSV or XLSX.
// @Tags Reports
// @Produce octet-stream
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /reports/fire-dues.csv [get]
// @Router /reports/fire-dues.xlsx [get]
func (h *Handler) fireDuesReport(format reportFormat) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.log(c, "fireDuesReport").WithField("format", format)

		dues, err := h.services.FireDues.ListFireDuesWithDetails(c.Request.Context())
		if err != nil {
			h.fail(c, log, err)
			return
		}
		h.writeReport(c, log, export.FireDuesReport(dues), "fire-dues", format)
	}
}

// @Summary Incidents report
// @Tags Reports
// @Produce octet-stream
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /reports/incidents.csv [get]
// @Router /reports/incidents.xlsx [get]
func (h *Handler) incidentsReport(format reportFormat) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.log(c, "incidentsReport").WithField("format", format)

		incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), models.IncidentFilter{})
		if err != nil {
			h.fail(c, log, err)
			return
		}
		h.writeReport(c, log, export.IncidentsReport(incidents), "incidents", format)
	}
}

// @Summary Invoices report
// @Tags Reports
// @Produce octet-stream
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /reports/invoices.csv [get]
// @Router /reports/invoices.xlsx [get]
func (h *Handler) invoicesReport(format reportFormat) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.log(c, "invoicesReport").WithField("format", format)

		invoices, err := h.services.Billing.ListInvoices(c.Request.Context(), models.InvoiceFilter{})
		if err != nil {
			h.fail(c, log, err)
			return
		}
		h.writeReport(c, log, export.InvoicesReport(invoices), "invoices", format)
	}
}
