package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/config"
	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/shenikar/fire_ops_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

type testMocks struct {
	incidents *mocks.MockIncidentService
	personnel *mocks.MockPersonnelService
	apparatus *mocks.MockApparatusService
	property  *mocks.MockPropertyService
	fireDues  *mocks.MockFireDueService
	billing   *mocks.MockBillingService
	budget    *mocks.MockBudgetService
	assets    *mocks.MockAssetService
	training  *mocks.MockTrainingService
	portal    *mocks.MockPortalService
	dashboard *mocks.MockDashboardService
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		personnel: mocks.NewMockPersonnelService(ctrl),
		apparatus: mocks.NewMockApparatusService(ctrl),
		property:  mocks.NewMockPropertyService(ctrl),
		fireDues:  mocks.NewMockFireDueService(ctrl),
		billing:   mocks.NewMockBillingService(ctrl),
		budget:    mocks.NewMockBudgetService(ctrl),
		assets:    mocks.NewMockAssetService(ctrl),
		training:  mocks.NewMockTrainingService(ctrl),
		portal:    mocks.NewMockPortalService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-api-key"}}

	handler := NewHandler(Services{
		Incidents: m.incidents,
		Personnel: m.personnel,
		Apparatus: m.apparatus,
		Property:  m.property,
		FireDues:  m.fireDues,
		Billing:   m.billing,
		Budget:    m.budget,
		Assets:    m.assets,
		Training:  m.training,
		Portal:    m.portal,
		Dashboard: m.dashboard,
	}, logger, cfg)
	handler.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHealthCheck_NoAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuth_MissingKey(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://portal.example.org"}}
	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	router.GET("/api/v1/portal/citizens", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := map[string]string{
		"Origin":                        "https://portal.example.org",
		"Access-Control-Request-Method": "GET",
	}
	w := makeRequest(router, "OPTIONS", "/api/v1/portal/citizens", nil, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portal.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	preflight["Origin"] = "https://elsewhere.example.org"
	w = makeRequest(router, "OPTIONS", "/api/v1/portal/citizens", nil, preflight)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_InvalidKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Type:    "MVA",
		Address: "Route 9",
		Modules: models.NFIRSModules{EMS: &models.EMSModule{PatientCount: 2}},
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc models.Incident) (models.Incident, error) {
			assert.Equal(t, "MVA", inc.Type)
			assert.Equal(t, 2, inc.Modules.EMS.PatientCount)
			assert.Equal(t, "chief", audit.ActorFromContext(ctx))
			inc.ID = "inc-1"
			inc.IncidentNumber = "2024-00001"
			return inc, nil
		})

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), apiKey, map[string]string{"X-User-ID": "chief"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "inc-1", resp.ID)
	assert.Equal(t, "2024-00001", resp.IncidentNumber)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "MVA"`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Type: "MVA"}), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Address' failed on the 'required' tag")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).
		Return(models.Incident{}, errors.New("boom"))

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Type: "MVA", Address: "Main"}), apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetIncident(gomock.Any(), "inc-404").
		Return(models.Incident{}, fmt.Errorf("service: could not get incident: %w", &store.NotFoundError{Entity: "Incident", ID: "inc-404"}))

	w := makeRequest(router, "GET", "/api/v1/incidents/inc-404", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Incident not found"}`, w.Body.String())
}

func TestGetIncident_Transient(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetIncident(gomock.Any(), "inc-1").Return(models.Incident{}, store.ErrTransient)

	w := makeRequest(router, "GET", "/api/v1/incidents/inc-1", nil, apiKey)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "retry later")
}

func TestUpdateIncident_Locked(t *testing.T) {
	m, router := newTestHandler(t)
	narrative := "updated"

	m.incidents.EXPECT().
		UpdateIncident(gomock.Any(), "inc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.IncidentPatch) (models.Incident, error) {
			require.NotNil(t, patch.Narrative)
			assert.Equal(t, narrative, *patch.Narrative)
			assert.Nil(t, patch.Type)
			return models.Incident{}, fmt.Errorf("service: could not update incident: %w", store.ErrIncidentLocked)
		})

	w := makeRequest(router, "PUT", "/api/v1/incidents/inc-1", jsonBody(t, UpdateIncidentRequest{Narrative: &narrative}), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "incident is locked")
}

func TestListIncidents_Filters(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.IncidentFilter) ([]models.Incident, error) {
			assert.Equal(t, "MVA", f.Type)
			require.NotNil(t, f.From)
			assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Nil(t, f.To)
			return []models.Incident{{ID: "inc-1"}, {ID: "inc-2"}}, nil
		})

	w := makeRequest(router, "GET", "/api/v1/incidents?type=MVA&from=2024-01-01", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListIncidents_InvalidDate(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents?to=yesterday", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLockIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().LockIncident(gomock.Any(), "inc-1").
		Return(models.Incident{ID: "inc-1", Status: models.IncidentStatusLocked}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/inc-1/lock", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Locked"`)
}

func TestDeleteIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().DeleteIncident(gomock.Any(), "inc-1").Return(nil)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/inc-1", nil, apiKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestIncidentAnalytics_StaticRoute(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)
	m.incidents.EXPECT().GetAnalytics(gomock.Any()).Return(models.IncidentAnalytics{Total: 3}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/analytics", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkPayFireDues(t *testing.T) {
	m, router := newTestHandler(t)
	m.fireDues.EXPECT().
		BulkMarkPaid(gomock.Any(), []string{"due-1", "due-404"}, time.Time{}).
		Return(models.BulkPaymentResult{Updated: []models.FireDue{{ID: "due-1", Status: models.FireDueStatusPaid}}, Missing: []string{"due-404"}}, nil)

	w := makeRequest(router, "POST", "/api/v1/fire-dues/bulk-pay", jsonBody(t, BulkPaymentRequest{IDs: []string{"due-1", "due-404"}}), apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BulkPaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Updated, 1)
	assert.Equal(t, []string{"due-404"}, resp.Missing)
}

func TestBulkPayFireDues_EmptyIDs(t *testing.T) {
	m, router := newTestHandler(t)
	m.fireDues.EXPECT().BulkMarkPaid(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/fire-dues/bulk-pay", bytes.NewBufferString(`{"ids":[]}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayFireDue_WithoutBody(t *testing.T) {
	m, router := newTestHandler(t)
	m.fireDues.EXPECT().MarkPaid(gomock.Any(), "due-1", time.Time{}).
		Return(models.FireDue{ID: "due-1", Status: models.FireDueStatusPaid}, nil)

	w := makeRequest(router, "POST", "/api/v1/fire-dues/due-1/pay", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateInvoice_NotBillable(t *testing.T) {
	m, router := newTestHandler(t)
	m.billing.EXPECT().GenerateInvoice(gomock.Any(), "inc-2").
		Return(models.Invoice{}, fmt.Errorf("service: could not generate invoice: %w", store.ErrNotBillable))

	w := makeRequest(router, "POST", "/api/v1/invoices", jsonBody(t, GenerateInvoiceRequest{IncidentID: "inc-2"}), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not billable")
}

func TestUpdateInvoiceStatus_InvalidStatus(t *testing.T) {
	m, router := newTestHandler(t)
	m.billing.EXPECT().UpdateInvoiceStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/invoices/inv-1/status", jsonBody(t, InvoiceStatusRequest{Status: "Lost"}), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBudget_InvalidYear(t *testing.T) {
	m, router := newTestHandler(t)
	m.budget.EXPECT().GetBudget(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/budgets/next", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid fiscal year")
}

func TestRecordExpense(t *testing.T) {
	m, router := newTestHandler(t)
	m.budget.EXPECT().RecordExpense(gomock.Any(), 2024, "bli-1", 250.0).
		Return(models.Budget{FiscalYear: 2024, TotalSpent: 250}, nil)

	w := makeRequest(router, "POST", "/api/v1/budgets/2024/items/bli-1/expenses", jsonBody(t, ExpenseRequest{Amount: 250}), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateAsset_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	m.assets.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).
		Return(models.Asset{}, fmt.Errorf("%w: serial number SCBA-1 already exists", service.ErrConflict))

	body := CreateAssetRequest{Name: "SCBA", SerialNumber: "SCBA-1", Category: "SCBA"}
	w := makeRequest(router, "POST", "/api/v1/assets", jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SCBA-1")
}

func TestUpdateAsset_InvalidParent(t *testing.T) {
	m, router := newTestHandler(t)
	parent := "asset-1"
	m.assets.EXPECT().UpdateAsset(gomock.Any(), "asset-1", gomock.Any()).
		Return(models.Asset{}, store.ErrInvalidParent)

	w := makeRequest(router, "PUT", "/api/v1/assets/asset-1", jsonBody(t, UpdateAssetRequest{ParentID: &parent}), apiKey)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAssignAsset_TargetRequired(t *testing.T) {
	m, router := newTestHandler(t)
	m.assets.EXPECT().AssignAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/assets/asset-1/assign", jsonBody(t, AssignAssetRequest{TargetType: models.AssignedToApparatus}), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignAsset_Clear(t *testing.T) {
	m, router := newTestHandler(t)
	m.assets.EXPECT().AssignAsset(gomock.Any(), "asset-1", "", "").Return(models.Asset{ID: "asset-1"}, nil)

	w := makeRequest(router, "POST", "/api/v1/assets/asset-1/assign", bytes.NewBufferString(`{}`), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPortal_PublicWithoutAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	m.portal.EXPECT().CitizenDues(gomock.Any(), "citizen-1").
		Return([]models.FireDueWithDetails{{FireDue: models.FireDue{ID: "due-1"}, Address: "14 Maple Ave"}}, nil)

	w := makeRequest(router, "GET", "/api/v1/portal/citizens/citizen-1/dues", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "14 Maple Ave")
}

func TestCreateCitizen_RequiresAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	body := CitizenRequest{Name: "Sam Ortiz", Email: "sam@example.com", PropertyIDs: []string{"prop-3"}}

	w := makeRequest(router, "POST", "/api/v1/portal/citizens", jsonBody(t, body))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "POST", "/api/v1/citizens", jsonBody(t, body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	m.portal.EXPECT().CreateCitizen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Citizen) (models.Citizen, error) {
			assert.Equal(t, []string{"prop-3"}, c.PropertyIDs)
			c.ID = "citizen-3"
			return c, nil
		})
	w = makeRequest(router, "POST", "/api/v1/citizens", jsonBody(t, body), apiKey)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "citizen-3")
}

func TestPortal_SubmitForgivenessDuplicate(t *testing.T) {
	m, router := newTestHandler(t)
	m.portal.EXPECT().
		SubmitForgivenessRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.BillForgivenessRequest) (models.BillForgivenessRequest, error) {
			assert.Equal(t, "citizen-1", r.CitizenID)
			assert.Equal(t, "due-6", r.FireDueID)
			return models.BillForgivenessRequest{}, fmt.Errorf("%w: request for this bill is already pending", store.ErrConflict)
		})

	body := ForgivenessRequest{FireDueID: "due-6", Reason: "Vacant after the storm"}
	w := makeRequest(router, "POST", "/api/v1/portal/citizens/citizen-1/forgiveness-requests", jsonBody(t, body), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already pending")
}

func TestResolveForgiveness_RequiresDecision(t *testing.T) {
	m, router := newTestHandler(t)
	m.portal.EXPECT().ResolveForgivenessRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/forgiveness-requests/forgive-1/resolve", bytes.NewBufferString(`{}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveForgiveness_Deny(t *testing.T) {
	m, router := newTestHandler(t)
	m.portal.EXPECT().ResolveForgivenessRequest(gomock.Any(), "forgive-1", false).
		Return(models.BillForgivenessRequest{ID: "forgive-1", Status: models.ForgivenessDenied}, nil)

	w := makeRequest(router, "POST", "/api/v1/forgiveness-requests/forgive-1/resolve", bytes.NewBufferString(`{"approve":false}`), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.ForgivenessDenied)
}

func TestDashboardLayout_UsesUserHeader(t *testing.T) {
	m, router := newTestHandler(t)
	layout := models.DashboardLayout{WidgetOrder: []string{"budget", "incidents"}, HiddenWidgets: []string{}}
	m.dashboard.EXPECT().SaveLayout(gomock.Any(), "rkim", layout).Return(layout, nil)

	body := DashboardLayoutRequest{WidgetOrder: layout.WidgetOrder, HiddenWidgets: []string{}}
	w := makeRequest(router, "PUT", "/api/v1/dashboard/layout", jsonBody(t, body), apiKey, map[string]string{"X-User-ID": "rkim"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"widgetOrder":["budget","incidents"],"hiddenWidgets":[]}`, w.Body.String())
}

func TestDashboardLayout_DefaultActor(t *testing.T) {
	m, router := newTestHandler(t)
	m.dashboard.EXPECT().GetLayout(gomock.Any(), audit.SystemActor).Return(models.DefaultDashboardLayout(), nil)

	w := makeRequest(router, "GET", "/api/v1/dashboard/layout", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveLayout_UnknownWidget(t *testing.T) {
	m, router := newTestHandler(t)
	m.dashboard.EXPECT().SaveLayout(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DashboardLayout{}, fmt.Errorf("%w: unknown widget %q", service.ErrValidation, "weather"))

	w := makeRequest(router, "PUT", "/api/v1/dashboard/layout", jsonBody(t, DashboardLayoutRequest{WidgetOrder: []string{"weather"}}), apiKey)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuditLog_Limit(t *testing.T) {
	m, router := newTestHandler(t)
	m.dashboard.EXPECT().AuditLog(gomock.Any(), models.AuditFilter{Target: "Incident", Limit: 5}).
		Return([]models.AuditLogEntry{}, nil)

	w := makeRequest(router, "GET", "/api/v1/audit-log?target=Incident&limit=5", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFireDuesReport_CSV(t *testing.T) {
	m, router := newTestHandler(t)
	m.fireDues.EXPECT().ListFireDuesWithDetails(gomock.Any()).Return([]models.FireDueWithDetails{{
		FireDue:   models.FireDue{ID: "due-1", Year: 2024, Amount: 125, Status: models.FireDueStatusUnpaid},
		Address:   `14 "Maple" Ave`,
		ParcelID:  "12-044-001",
		OwnerName: "Margaret Hill",
	}}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/fire-dues.csv", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, csvContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fire-dues-2024-03-15.csv")
	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"14 ""Maple"" Ave"`)
	assert.Contains(t, lines[1], `"125.00"`)
}

func TestIncidentsReport_XLSX(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), models.IncidentFilter{}).
		Return([]models.Incident{{ID: "inc-1", IncidentNumber: "2024-00001", Type: "MVA"}}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/incidents.xlsx", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("incidents")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-00001", rows[1][0])
}
