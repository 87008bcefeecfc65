package v1

import (
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	IncidentNumber         string              `json:"incident_number,omitempty"`
	Date                   *time.Time          `json:"date,omitempty"`
	Type                   string              `json:"type" validate:"required,max=64"`
	Address                string              `json:"address" validate:"required,max=255"`
	PropertyID             string              `json:"property_id,omitempty"`
	Status                 string              `json:"status,omitempty"`
	RespondingPersonnelIDs []string            `json:"responding_personnel_ids,omitempty"`
	RespondingApparatusIDs []string            `json:"responding_apparatus_ids,omitempty"`
	Narrative              string              `json:"narrative,omitempty"`
	Modules                models.NFIRSModules `json:"modules"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Date                   *time.Time           `json:"date,omitempty"`
	Type                   *string              `json:"type,omitempty" validate:"omitempty,min=1,max=64"`
	Address                *string              `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	PropertyID             *string              `json:"property_id,omitempty"`
	Status                 *string              `json:"status,omitempty"`
	RespondingPersonnelIDs *[]string            `json:"responding_personnel_ids,omitempty"`
	RespondingApparatusIDs *[]string            `json:"responding_apparatus_ids,omitempty"`
	Narrative              *string              `json:"narrative,omitempty"`
	Modules                *models.NFIRSModules `json:"modules,omitempty"`
}

// CreatePersonnelRequest DTO для создания сотрудника
// @Description DTO для создания сотрудника
type CreatePersonnelRequest struct {
	Name           string                 `json:"name" validate:"required,min=2,max=255"`
	Rank           string                 `json:"rank" validate:"required"`
	Status         string                 `json:"status,omitempty"`
	Email          string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string                 `json:"phone,omitempty"`
	HireDate       *time.Time             `json:"hire_date,omitempty"`
	Certifications []models.Certification `json:"certifications,omitempty"`
}

// UpdatePersonnelRequest DTO для частичного обновления сотрудника
// @Description DTO для частичного обновления сотрудника
type UpdatePersonnelRequest struct {
	Name           *string                 `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Rank           *string                 `json:"rank,omitempty"`
	Status         *string                 `json:"status,omitempty"`
	Email          *string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string                 `json:"phone,omitempty"`
	HireDate       *time.Time              `json:"hire_date,omitempty"`
	Certifications *[]models.Certification `json:"certifications,omitempty"`
}

// TrainingRecordRequest DTO для отметки о пройденном курсе
// @Description DTO для отметки о пройденном курсе
type TrainingRecordRequest struct {
	CourseID    string     `json:"course_id" validate:"required"`
	CourseName  string     `json:"course_name,omitempty"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	Hours       float64    `json:"hours" validate:"gte=0"`
}

// ShiftRequest DTO для создания смены
// @Description DTO для создания смены
type ShiftRequest struct {
	Name         string    `json:"name" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	PersonnelIDs []string  `json:"personnel_ids,omitempty"`
}

// ExposureLogRequest DTO для записи о воздействии вредных факторов
// @Description DTO для записи о воздействии вредных факторов
type ExposureLogRequest struct {
	PersonnelID  string     `json:"personnel_id" validate:"required"`
	IncidentID   string     `json:"incident_id" validate:"required"`
	ExposureType string     `json:"exposure_type" validate:"required"`
	Date         *time.Time `json:"date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// CreateApparatusRequest DTO для создания единицы техники
// @Description DTO для создания единицы техники
type CreateApparatusRequest struct {
	UnitID       string               `json:"unit_id" validate:"required,max=64"`
	Type         string               `json:"type" validate:"required"`
	Status       string               `json:"status,omitempty"`
	VIN          string               `json:"vin,omitempty" validate:"omitempty,max=17"`
	Mileage      float64              `json:"mileage" validate:"gte=0"`
	EngineHours  float64              `json:"engine_hours" validate:"gte=0"`
	Compartments []models.Compartment `json:"compartments,omitempty"`
}

// UpdateApparatusRequest DTO для частичного обновления техники
// @Description DTO для частичного обновления техники
type UpdateApparatusRequest struct {
	UnitID       *string               `json:"unit_id,omitempty" validate:"omitempty,min=1,max=64"`
	Type         *string               `json:"type,omitempty"`
	Status       *string               `json:"status,omitempty"`
	VIN          *string               `json:"vin,omitempty" validate:"omitempty,max=17"`
	Compartments *[]models.Compartment `json:"compartments,omitempty"`
}

// VitalsRequest DTO для показаний пробега и моточасов
// @Description DTO для показаний пробега и моточасов
type VitalsRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Mileage     float64    `json:"mileage" validate:"gte=0"`
	EngineHours float64    `json:"engine_hours" validate:"gte=0"`
	FuelLevel   float64    `json:"fuel_level" validate:"gte=0,lte=1"`
	RecordedBy  string     `json:"recorded_by,omitempty"`
}

// OwnerRequest DTO для создания владельца
// @Description DTO для создания владельца
type OwnerRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	MailingAddress string `json:"mailing_address,omitempty"`
}

// UpdateOwnerRequest DTO для частичного обновления владельца
// @Description DTO для частичного обновления владельца
type UpdateOwnerRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	MailingAddress *string `json:"mailing_address,omitempty"`
}

// PropertyRequest DTO для создания объекта недвижимости
// @Description DTO для создания объекта недвижимости
type PropertyRequest struct {
	ParcelID      string   `json:"parcel_id" validate:"required"`
	Address       string   `json:"address" validate:"required,max=255"`
	OccupancyType string   `json:"occupancy_type,omitempty"`
	OwnerIDs      []string `json:"owner_ids,omitempty"`
}

// UpdatePropertyRequest DTO для частичного обновления объекта
// @Description DTO для частичного обновления объекта
type UpdatePropertyRequest struct {
	ParcelID      *string   `json:"parcel_id,omitempty" validate:"omitempty,min=1"`
	Address       *string   `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	OccupancyType *string   `json:"occupancy_type,omitempty"`
	OwnerIDs      *[]string `json:"owner_ids,omitempty"`
}

// PreIncidentPlanRequest DTO для плана предварительного реагирования
// @Description DTO для плана предварительного реагирования
type PreIncidentPlanRequest struct {
	ConstructionType string   `json:"construction_type,omitempty"`
	Hazards          []string `json:"hazards,omitempty"`
	AccessNotes      string   `json:"access_notes,omitempty"`
	HydrantLocations []string `json:"hydrant_locations,omitempty"`
	KnoxBox          bool     `json:"knox_box"`
	EmergencyContact string   `json:"emergency_contact,omitempty"`
}

// FireDueRequest DTO для создания пожарного сбора
// @Description DTO для создания пожарного сбора
type FireDueRequest struct {
	PropertyID string  `json:"property_id" validate:"required"`
	Year       int     `json:"year" validate:"required,gte=1900,lte=2200"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Status     string  `json:"status,omitempty" validate:"omitempty,oneof=Unpaid Overdue Paid"`
}

// UpdateFireDueRequest DTO для частичного обновления сбора
// @Description DTO для частичного обновления сбора
type UpdateFireDueRequest struct {
	Amount      *float64   `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=Unpaid Overdue Paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// PaymentRequest DTO для отметки оплаты
// @Description DTO для отметки оплаты
type PaymentRequest struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// BulkPaymentRequest DTO для массовой отметки оплаты
// @Description DTO для массовой отметки оплаты
type BulkPaymentRequest struct {
	IDs    []string   `json:"ids" validate:"required,min=1,dive,required"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// GenerateDuesRequest DTO для выставления годовых сборов
// @Description DTO для выставления годовых сборов
type GenerateDuesRequest struct {
	Year   int     `json:"year" validate:"required,gte=1900,lte=2200"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// GenerateInvoiceRequest DTO для выставления счета по инциденту
// @Description DTO для выставления счета по инциденту
type GenerateInvoiceRequest struct {
	IncidentID string `json:"incident_id" validate:"required"`
}

// InvoiceStatusRequest DTO для смены статуса счета
// @Description DTO для смены статуса счета
type InvoiceStatusRequest struct {
	Status string     `json:"status" validate:"required,oneof=Draft Sent Paid Overdue Void"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// BudgetLineItemRequest DTO для статьи бюджета
// @Description DTO для статьи бюджета
type BudgetLineItemRequest struct {
	Category       string  `json:"category" validate:"required"`
	Description    string  `json:"description,omitempty"`
	BudgetedAmount float64 `json:"budgeted_amount" validate:"gte=0"`
	ActualAmount   float64 `json:"actual_amount" validate:"gte=0"`
}

// CreateBudgetRequest DTO для создания бюджета на финансовый год
// @Description DTO для создания бюджета на финансовый год
type CreateBudgetRequest struct {
	FiscalYear int                     `json:"fiscal_year" validate:"required,gte=1900,lte=2200"`
	LineItems  []BudgetLineItemRequest `json:"line_items" validate:"omitempty,dive"`
}

// UpdateBudgetLineItemRequest DTO для частичного обновления статьи
// @Description DTO для частичного обновления статьи
type UpdateBudgetLineItemRequest struct {
	Category       *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Description    *string  `json:"description,omitempty"`
	BudgetedAmount *float64 `json:"budgeted_amount,omitempty" validate:"omitempty,gte=0"`
	ActualAmount   *float64 `json:"actual_amount,omitempty" validate:"omitempty,gte=0"`
}

// ExpenseRequest DTO для записи расхода по статье
// @Description DTO для записи расхода по статье
type ExpenseRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateAssetRequest DTO для создания инвентарной единицы
// @Description DTO для создания инвентарной единицы
type CreateAssetRequest struct {
	Name         string     `json:"name" validate:"required,max=255"`
	SerialNumber string     `json:"serial_number" validate:"required,max=128"`
	Category     string     `json:"category" validate:"required"`
	Status       string     `json:"status,omitempty"`
	ParentID     string     `json:"parent_id,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Cost         float64    `json:"cost" validate:"gte=0"`
}

// UpdateAssetRequest DTO для частичного обновления инвентаря
// @Description DTO для частичного обновления инвентаря
type UpdateAssetRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	SerialNumber *string    `json:"serial_number,omitempty" validate:"omitempty,min=1,max=128"`
	Category     *string    `json:"category,omitempty"`
	Status       *string    `json:"status,omitempty"`
	ParentID     *string    `json:"parent_id,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Cost         *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

// AssignAssetRequest DTO для закрепления инвентаря; пустой target_id снимает закрепление
// @Description DTO для закрепления инвентаря
type AssignAssetRequest struct {
	TargetType string `json:"target_type,omitempty" validate:"omitempty,oneof=Apparatus Personnel"`
	TargetID   string `json:"target_id,omitempty" validate:"required_with=TargetType"`
}

// CourseRequest DTO для создания курса
// @Description DTO для создания курса
type CourseRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Hours float64 `json:"hours" validate:"gt=0"`
}

// AlertRuleRequest DTO для правила оповещения
// @Description DTO для правила оповещения
type AlertRuleRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Metric    string  `json:"metric,omitempty" validate:"omitempty,oneof=training_compliance"`
	Condition string  `json:"condition" validate:"required,oneof=below above"`
	Threshold float64 `json:"threshold" validate:"gte=0,lte=100"`
	Enabled   bool    `json:"enabled"`
}

// CitizenRequest DTO для регистрации жителя
// @Description DTO для регистрации жителя
type CitizenRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone,omitempty"`
	PropertyIDs []string `json:"property_ids,omitempty"`
}

// ForgivenessRequest DTO для заявки на списание сбора
// @Description DTO для заявки на списание сбора
type ForgivenessRequest struct {
	FireDueID string `json:"fire_due_id" validate:"required"`
	Reason    string `json:"reason" validate:"required,min=5,max=1000"`
}

// ResolveForgivenessRequest DTO для решения по заявке
// @Description DTO для решения по заявке
type ResolveForgivenessRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// DashboardLayoutRequest DTO для раскладки панели
// @Description DTO для раскладки панели
type DashboardLayoutRequest struct {
	WidgetOrder   []string `json:"widgetOrder" validate:"required,min=1"`
	HiddenWidgets []string `json:"hiddenWidgets"`
}
