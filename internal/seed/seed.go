// Package seed - демонстрационные данные пожарной части.
// Даты строятся относительно переданного now, поэтому свежие данные
// всегда попадают в текущий финансовый год.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/store"
)

// Importer - хранилище, принимающее снимок целиком
type Importer interface {
	Import(ctx context.Context, snap store.Snapshot) error
}

// Load заполняет хранилище демонстрационными данными
func Load(ctx context.Context, target Importer, now time.Time) error {
	if err := target.Import(ctx, Snapshot(now)); err != nil {
		return fmt.Errorf("failed to import seed data: %w", err)
	}
	return nil
}

func day(now time.Time, offset int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func ptrTime(t time.Time) *time.Time { return &t }

// Snapshot возвращает демонстрационный снимок на дату now
func Snapshot(now time.Time) store.Snapshot {
	year := now.Year()
	prev := year - 1

	return store.Snapshot{
		Incidents:     incidents(now),
		Personnel:     personnel(now),
		Shifts:        shifts(now),
		Exposures:     exposures(now),
		Apparatus:     apparatus(now),
		Owners:        owners(),
		Properties:    properties(now),
		FireDues:      fireDues(year, prev, now),
		Invoices:      invoices(now),
		Budgets:       budgets(year),
		Assets:        assets(now),
		AuditLog:      []models.AuditLogEntry{},
		Notifications: []models.Notification{{ID: "notif-1", Timestamp: day(now, -1), Type: models.NotificationInfo, Message: "Annual hose testing is scheduled for next week"}},
		Courses:       courses(),
		AlertRules: []models.AlertRule{{
			ID:        "rule-1",
			Name:      "Training compliance below 80%",
			Metric:    models.MetricTrainingCompliance,
			Condition: models.AlertConditionBelow,
			Threshold: 80,
			Enabled:   true,
		}},
		Citizens: []models.Citizen{
			{ID: "citizen-1", Name: "Margaret Hill", Email: "mhill@example.com", Phone: "555-0141", PropertyIDs: []string{"prop-1"}},
			{ID: "citizen-2", Name: "Tom Becker", Email: "tbecker@example.com", PropertyIDs: []string{"prop-3", "prop-4"}},
		},
		Forgiveness: []models.BillForgivenessRequest{{
			ID:          "forgive-1",
			CitizenID:   "citizen-2",
			FireDueID:   "due-6",
			Reason:      "Property was vacant after the storm",
			Status:      models.ForgivenessPending,
			SubmittedAt: day(now, -3),
		}},
	}
}

func courses() []models.Course {
	return []models.Course{
		{ID: "course-cpr", Name: "CPR / AED Recertification", Hours: 4},
		{ID: "course-hazmat", Name: "Hazmat Operations Refresher", Hours: 8},
		{ID: "course-nims", Name: "NIMS ICS-100", Hours: 3},
		{ID: "course-evoc", Name: "Emergency Vehicle Operations", Hours: 16},
	}
}

func training(now time.Time, ids ...string) []models.TrainingRecord {
	names := make(map[string]models.Course)
	for _, c := range courses() {
		names[c.ID] = c
	}
	out := make([]models.TrainingRecord, 0, len(ids))
	for i, id := range ids {
		c := names[id]
		out = append(out, models.TrainingRecord{CourseID: id, CourseName: c.Name, CompletedOn: day(now, -30*(i+1)), Hours: c.Hours})
	}
	return out
}

func personnel(now time.Time) []models.Personnel {
	return []models.Personnel{
		{
			ID: "per-1", Name: "Daniel Ortiz", Rank: "Chief", Status: models.PersonnelStatusActive,
			Email: "dortiz@firedept.local", HireDate: day(now, -365*14),
			Certifications: []models.Certification{
				{Name: "Fire Officer II", Number: "FO2-1182", IssuedOn: day(now, -900), ExpiresOn: ptrTime(day(now, 400))},
				{Name: "EMT-B", Number: "EMT-55120", IssuedOn: day(now, -700), ExpiresOn: ptrTime(day(now, 45))},
			},
			TrainingHistory: training(now, "course-cpr", "course-hazmat", "course-nims"),
		},
		{
			ID: "per-2", Name: "Rachel Kim", Rank: "Captain", Status: models.PersonnelStatusActive,
			Email: "rkim@firedept.local", HireDate: day(now, -365*8),
			Certifications: []models.Certification{
				{Name: "Paramedic", Number: "NRP-20931", IssuedOn: day(now, -600), ExpiresOn: ptrTime(day(now, 20))},
			},
			TrainingHistory: training(now, "course-cpr", "course-nims"),
		},
		{
			ID: "per-3", Name: "Luis Moreno", Rank: "Firefighter", Status: models.PersonnelStatusActive,
			HireDate: day(now, -365*2),
			Certifications: []models.Certification{
				{Name: "Firefighter I", IssuedOn: day(now, -500)},
				{Name: "Hazmat Awareness", IssuedOn: day(now, -800), ExpiresOn: ptrTime(day(now, -10))},
			},
			TrainingHistory: training(now, "course-cpr", "course-hazmat", "course-nims", "course-evoc"),
		},
		{
			ID: "per-4", Name: "Nora Walsh", Rank: "Lieutenant", Status: models.PersonnelStatusOnLeave,
			HireDate:        day(now, -365*5),
			Certifications:  []models.Certification{},
			TrainingHistory: training(now, "course-cpr"),
		},
	}
}

func shifts(now time.Time) []models.Shift {
	return []models.Shift{
		{ID: "shift-1", Name: "A Shift", Date: day(now, 0), PersonnelIDs: []string{"per-1", "per-3"}},
		{ID: "shift-2", Name: "B Shift", Date: day(now, 1), PersonnelIDs: []string{"per-2"}},
	}
}

func exposures(now time.Time) []models.ExposureLog {
	return []models.ExposureLog{{
		ID:             "exp-1",
		PersonnelID:    "per-3",
		IncidentID:     "inc-2",
		IncidentNumber: fmt.Sprintf("%d-00002", now.Year()),
		ExposureType:   "Smoke",
		Date:           day(now, -20),
		Notes:          "Interior attack without SCBA for under two minutes",
	}}
}

func apparatus(now time.Time) []models.Apparatus {
	return []models.Apparatus{
		{
			ID: "app-1", UnitID: "Engine 1", Type: "Engine", Status: models.ApparatusStatusInService,
			VIN: "1FDUF5HT4KDA12345", Mileage: 48210, EngineHours: 3120,
			VitalsHistory: []models.VitalsReading{
				{Date: day(now, -1), Mileage: 48210, EngineHours: 3120, FuelLevel: 0.85, RecordedBy: "per-3"},
				{Date: day(now, -8), Mileage: 48102, EngineHours: 3111, FuelLevel: 0.6, RecordedBy: "per-3"},
			},
			Compartments: []models.Compartment{
				{ID: "comp-1", Name: "Driver Side 1", Items: []models.CompartmentItem{{Name: "SCBA Pack", Quantity: 2, AssetID: "asset-2"}, {Name: "Halligan Bar", Quantity: 1}}},
			},
		},
		{
			ID: "app-2", UnitID: "Ladder 1", Type: "Ladder", Status: models.ApparatusStatusMaintenance,
			Mileage: 61877, EngineHours: 4410, VitalsHistory: []models.VitalsReading{}, Compartments: []models.Compartment{},
		},
		{
			ID: "app-3", UnitID: "Medic 1", Type: "Ambulance", Status: models.ApparatusStatusInService,
			Mileage: 90211, EngineHours: 5021, VitalsHistory: []models.VitalsReading{}, Compartments: []models.Compartment{},
		},
	}
}

func owners() []models.Owner {
	return []models.Owner{
		{ID: "owner-1", Name: "Margaret Hill", Phone: "555-0141", Email: "mhill@example.com"},
		{ID: "owner-2", Name: "Riverside Holdings LLC", MailingAddress: "PO Box 77, Riverside"},
		{ID: "owner-3", Name: "Tom Becker", Email: "tbecker@example.com"},
		{ID: "owner-4", Name: "Anna Becker"},
	}
}

func properties(now time.Time) []models.Property {
	return []models.Property{
		{ID: "prop-1", ParcelID: "12-044-001", Address: "14 Maple Ave", OccupancyType: "Residential", OwnerIDs: []string{"owner-1"}},
		{
			ID: "prop-2", ParcelID: "12-051-010", Address: "220 River Rd", OccupancyType: "Commercial", OwnerIDs: []string{"owner-2"},
			PreIncidentPlan: &models.PreIncidentPlan{
				ID:               "pip-1",
				UpdatedAt:        day(now, -40),
				ConstructionType: "Type II Non-combustible",
				Hazards:          []string{"Propane storage", "Roof-mounted solar"},
				HydrantLocations: []string{"NE corner of lot"},
				KnoxBox:          true,
				EmergencyContact: "Facilities 555-0199",
			},
		},
		{ID: "prop-3", ParcelID: "12-060-003", Address: "8 Orchard Ln", OccupancyType: "Residential", OwnerIDs: []string{"owner-3", "owner-4"}},
		{ID: "prop-4", ParcelID: "12-060-004", Address: "10 Orchard Ln", OccupancyType: "Agricultural", OwnerIDs: []string{"owner-3"}},
		{ID: "prop-5", ParcelID: "12-070-020", Address: "1 Depot St", OccupancyType: "Industrial", OwnerIDs: []string{}},
	}
}

func fireDues(year, prev int, now time.Time) []models.FireDue {
	return []models.FireDue{
		{ID: "due-1", PropertyID: "prop-1", Year: year, Amount: 125, Status: models.FireDueStatusPaid, PaymentDate: ptrTime(day(now, -12))},
		{ID: "due-2", PropertyID: "prop-2", Year: year, Amount: 450, Status: models.FireDueStatusUnpaid},
		{ID: "due-3", PropertyID: "prop-3", Year: year, Amount: 125, Status: models.FireDueStatusUnpaid},
		{ID: "due-4", PropertyID: "prop-4", Year: year, Amount: 200, Status: models.FireDueStatusPaid, PaymentDate: ptrTime(day(now, -30))},
		{ID: "due-5", PropertyID: "prop-5", Year: year, Amount: 600, Status: models.FireDueStatusUnpaid},
		{ID: "due-6", PropertyID: "prop-3", Year: prev, Amount: 125, Status: models.FireDueStatusOverdue},
		{ID: "due-7", PropertyID: "prop-1", Year: prev, Amount: 120, Status: models.FireDueStatusPaid, PaymentDate: ptrTime(day(now, -300))},
	}
}

func incidents(now time.Time) []models.Incident {
	year := now.Year()
	number := func(n int) string { return fmt.Sprintf("%d-%05d", year, n) }
	return []models.Incident{
		{
			ID: "inc-1", IncidentNumber: number(1), Date: day(now, -25), Type: "MVA", Address: "Route 9 at Mill Rd",
			Status: models.IncidentStatusLocked, RespondingPersonnelIDs: []string{"per-1", "per-2"}, RespondingApparatusIDs: []string{"app-1", "app-3"},
			Narrative: "Two-vehicle collision, one patient transported.",
			Modules: models.NFIRSModules{
				Basic: models.BasicModule{ActionsTaken: []string{"Extrication", "Patient care"}},
				EMS:   &models.EMSModule{PatientCount: 1, Disposition: "Transported"},
			},
			CreatedAt: day(now, -25), UpdatedAt: day(now, -24), LockedAt: ptrTime(day(now, -24)),
		},
		{
			ID: "inc-2", IncidentNumber: number(2), Date: day(now, -20), Type: "Structure Fire", Address: "8 Orchard Ln", PropertyID: "prop-3",
			Status: models.IncidentStatusInProgress, RespondingPersonnelIDs: []string{"per-1", "per-3"}, RespondingApparatusIDs: []string{"app-1"},
			Modules: models.NFIRSModules{
				Basic: models.BasicModule{PropertyLoss: 18000, ContentsLoss: 4500},
				Fire:  &models.FireModule{AreaOfOrigin: "Kitchen", HeatSource: "Cooking equipment", CauseOfIgnition: "Unintentional", DetectorPresent: true},
			},
			CreatedAt: day(now, -20), UpdatedAt: day(now, -20),
		},
		{
			ID: "inc-3", IncidentNumber: number(3), Date: day(now, -6), Type: "Hazmat", Address: "1 Depot St", PropertyID: "prop-5",
			Status: models.IncidentStatusInProgress, RespondingPersonnelIDs: []string{"per-2", "per-3"}, RespondingApparatusIDs: []string{"app-1"},
			Narrative: "Diesel spill from a ruptured saddle tank.",
			Modules:   models.NFIRSModules{Basic: models.BasicModule{HazmatReleased: true}},
			CreatedAt: day(now, -6), UpdatedAt: day(now, -6),
		},
		{
			ID: "inc-4", IncidentNumber: number(4), Date: day(now, -2), Type: "Medical", Address: "14 Maple Ave", PropertyID: "prop-1",
			Status: models.IncidentStatusInProgress, RespondingPersonnelIDs: []string{"per-2"}, RespondingApparatusIDs: []string{"app-3"},
			Modules:   models.NFIRSModules{EMS: &models.EMSModule{PatientCount: 1, Disposition: "Refused transport"}},
			CreatedAt: day(now, -2), UpdatedAt: day(now, -2),
		},
	}
}

func invoices(now time.Time) []models.Invoice {
	rate := store.DefaultBillingRates["MVA"]
	return []models.Invoice{{
		ID:            "inv-1",
		InvoiceNumber: fmt.Sprintf("INV-%d-0001", now.Year()),
		IncidentID:    "inc-1",
		IssuedDate:    day(now, -23),
		DueDate:       day(now, 7),
		LineItems:     []models.InvoiceLineItem{{Description: rate.Description, Quantity: 1, Rate: rate.Rate, Total: rate.Rate}},
		TotalAmount:   rate.Rate,
		Status:        models.InvoiceStatusSent,
	}}
}

// Итоги бюджета пересчитываются при импорте
func budgets(year int) []models.Budget {
	return []models.Budget{{
		FiscalYear: year,
		LineItems: []models.BudgetLineItem{
			{ID: "bli-1", Category: "Personnel", Description: "Stipends and overtime", BudgetedAmount: 180000, ActualAmount: 52000},
			{ID: "bli-2", Category: "Apparatus", Description: "Fuel and maintenance", BudgetedAmount: 45000, ActualAmount: 16150},
			{ID: "bli-3", Category: "Equipment", Description: "SCBA and turnout gear", BudgetedAmount: 30000, ActualAmount: 4200},
			{ID: "bli-4", Category: "Training", BudgetedAmount: 12000, ActualAmount: 2650},
		},
	}}
}

func assets(now time.Time) []models.Asset {
	return []models.Asset{
		{ID: "asset-1", Name: "SCBA Kit A", SerialNumber: "KIT-0001", Category: "SCBA", Status: models.AssetStatusInService, AssignedToType: models.AssignedToApparatus, AssignedToID: "app-1", PurchaseDate: ptrTime(day(now, -700)), Cost: 800},
		{ID: "asset-2", Name: "SCBA Pack", SerialNumber: "SCBA-3311", Category: "SCBA", Status: models.AssetStatusInService, ParentID: "asset-1", Cost: 6200},
		{ID: "asset-3", Name: "SCBA Cylinder", SerialNumber: "CYL-8820", Category: "SCBA", Status: models.AssetStatusInService, ParentID: "asset-1", Cost: 1100},
		{ID: "asset-4", Name: "Thermal Imaging Camera", SerialNumber: "TIC-5501", Category: "Electronics", Status: models.AssetStatusInService, AssignedToType: models.AssignedToPersonnel, AssignedToID: "per-1", Cost: 9500},
		{ID: "asset-5", Name: "Portable Radio", SerialNumber: "RAD-1021", Category: "Communications", Status: models.AssetStatusOutOfService, Cost: 2400},
	}
}
