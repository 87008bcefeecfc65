package v1

import "github.com/shenikar/fire_ops_system/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) models.Incident {
	return models.Incident{
		IncidentNumber:         dto.IncidentNumber,
		Date:                   timeOrZero(dto.Date),
		Type:                   dto.Type,
		Address:                dto.Address,
		PropertyID:             dto.PropertyID,
		Status:                 dto.Status,
		RespondingPersonnelIDs: dto.RespondingPersonnelIDs,
		RespondingApparatusIDs: dto.RespondingApparatusIDs,
		Narrative:              dto.Narrative,
		Modules:                dto.Modules,
	}
}

func DTOToIncidentPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	return models.IncidentPatch{
		Date:                   dto.Date,
		Type:                   dto.Type,
		Address:                dto.Address,
		PropertyID:             dto.PropertyID,
		Status:                 dto.Status,
		RespondingPersonnelIDs: dto.RespondingPersonnelIDs,
		RespondingApparatusIDs: dto.RespondingApparatusIDs,
		Narrative:              dto.Narrative,
		Modules:                dto.Modules,
	}
}

func DTOToPersonnelModel(dto CreatePersonnelRequest) models.Personnel {
	return models.Personnel{
		Name:           dto.Name,
		Rank:           dto.Rank,
		Status:         dto.Status,
		Email:          dto.Email,
		Phone:          dto.Phone,
		HireDate:       timeOrZero(dto.HireDate),
		Certifications: dto.Certifications,
	}
}

func DTOToPersonnelPatch(dto UpdatePersonnelRequest) models.PersonnelPatch {
	return models.PersonnelPatch{
		Name:           dto.Name,
		Rank:           dto.Rank,
		Status:         dto.Status,
		Email:          dto.Email,
		Phone:          dto.Phone,
		HireDate:       dto.HireDate,
		Certifications: dto.Certifications,
	}
}

func DTOToTrainingRecord(dto TrainingRecordRequest) models.TrainingRecord {
	return models.TrainingRecord{
		CourseID:    dto.CourseID,
		CourseName:  dto.CourseName,
		CompletedOn: timeOrZero(dto.CompletedOn),
		Hours:       dto.Hours,
	}
}

func DTOToShift(dto ShiftRequest) models.Shift {
	return models.Shift{Name: dto.Name, Date: dto.Date, PersonnelIDs: dto.PersonnelIDs}
}

func DTOToExposureLog(dto ExposureLogRequest) models.ExposureLog {
	return models.ExposureLog{
		PersonnelID:  dto.PersonnelID,
		IncidentID:   dto.IncidentID,
		ExposureType: dto.ExposureType,
		Date:         timeOrZero(dto.Date),
		Notes:        dto.Notes,
	}
}

func DTOToApparatusModel(dto CreateApparatusRequest) models.Apparatus {
	return models.Apparatus{
		UnitID:       dto.UnitID,
		Type:         dto.Type,
		Status:       dto.Status,
		VIN:          dto.VIN,
		Mileage:      dto.Mileage,
		EngineHours:  dto.EngineHours,
		Compartments: dto.Compartments,
	}
}

func DTOToApparatusPatch(dto UpdateApparatusRequest) models.ApparatusPatch {
	return models.ApparatusPatch{
		UnitID:       dto.UnitID,
		Type:         dto.Type,
		Status:       dto.Status,
		VIN:          dto.VIN,
		Compartments: dto.Compartments,
	}
}

func DTOToVitals(dto VitalsRequest) models.VitalsReading {
	return models.VitalsReading{
		Date:        timeOrZero(dto.Date),
		Mileage:     dto.Mileage,
		EngineHours: dto.EngineHours,
		FuelLevel:   dto.FuelLevel,
		RecordedBy:  dto.RecordedBy,
	}
}

func DTOToOwner(dto OwnerRequest) models.Owner {
	return models.Owner{
		Name:           dto.Name,
		Phone:          dto.Phone,
		Email:          dto.Email,
		MailingAddress: dto.MailingAddress,
	}
}

func DTOToOwnerPatch(dto UpdateOwnerRequest) models.OwnerPatch {
	return models.OwnerPatch{
		Name:           dto.Name,
		Phone:          dto.Phone,
		Email:          dto.Email,
		MailingAddress: dto.MailingAddress,
	}
}

func DTOToProperty(dto PropertyRequest) models.Property {
	return models.Property{
		ParcelID:      dto.ParcelID,
		Address:       dto.Address,
		OccupancyType: dto.OccupancyType,
		OwnerIDs:      dto.OwnerIDs,
	}
}

func DTOToPropertyPatch(dto UpdatePropertyRequest) models.PropertyPatch {
	return models.PropertyPatch{
		ParcelID:      dto.ParcelID,
		Address:       dto.Address,
		OccupancyType: dto.OccupancyType,
		OwnerIDs:      dto.OwnerIDs,
	}
}

func DTOToPreIncidentPlan(dto PreIncidentPlanRequest) models.PreIncidentPlan {
	return models.PreIncidentPlan{
		ConstructionType: dto.ConstructionType,
		Hazards:          dto.Hazards,
		AccessNotes:      dto.AccessNotes,
		HydrantLocations: dto.HydrantLocations,
		KnoxBox:          dto.KnoxBox,
		EmergencyContact: dto.EmergencyContact,
	}
}

func DTOToFireDue(dto FireDueRequest) models.FireDue {
	return models.FireDue{
		PropertyID: dto.PropertyID,
		Year:       dto.Year,
		Amount:     dto.Amount,
		Status:     dto.Status,
	}
}

func DTOToFireDuePatch(dto UpdateFireDueRequest) models.FireDuePatch {
	return models.FireDuePatch{
		Amount:      dto.Amount,
		Status:      dto.Status,
		PaymentDate: dto.PaymentDate,
	}
}

func DTOToBudgetLineItem(dto BudgetLineItemRequest) models.BudgetLineItem {
	return models.BudgetLineItem{
		Category:       dto.Category,
		Description:    dto.Description,
		BudgetedAmount: dto.BudgetedAmount,
		ActualAmount:   dto.ActualAmount,
	}
}

func DTOToBudgetLineItems(dtos []BudgetLineItemRequest) []models.BudgetLineItem {
	items := make([]models.BudgetLineItem, len(dtos))
	for i, dto := range dtos {
		items[i] = DTOToBudgetLineItem(dto)
	}
	return items
}

func DTOToBudgetLineItemPatch(dto UpdateBudgetLineItemRequest) models.BudgetLineItemPatch {
	return models.BudgetLineItemPatch{
		Category:       dto.Category,
		Description:    dto.Description,
		BudgetedAmount: dto.BudgetedAmount,
		ActualAmount:   dto.ActualAmount,
	}
}

func DTOToAsset(dto CreateAssetRequest) models.Asset {
	return models.Asset{
		Name:         dto.Name,
		SerialNumber: dto.SerialNumber,
		Category:     dto.Category,
		Status:       dto.Status,
		ParentID:     dto.ParentID,
		PurchaseDate: dto.PurchaseDate,
		Cost:         dto.Cost,
	}
}

func DTOToAssetPatch(dto UpdateAssetRequest) models.AssetPatch {
	return models.AssetPatch{
		Name:         dto.Name,
		SerialNumber: dto.SerialNumber,
		Category:     dto.Category,
		Status:       dto.Status,
		ParentID:     dto.ParentID,
		PurchaseDate: dto.PurchaseDate,
		Cost:         dto.Cost,
	}
}

func DTOToAlertRule(dto AlertRuleRequest) models.AlertRule {
	return models.AlertRule{
		Name:      dto.Name,
		Metric:    dto.Metric,
		Condition: dto.Condition,
		Threshold: dto.Threshold,
		Enabled:   dto.Enabled,
	}
}

func DTOToCitizen(dto CitizenRequest) models.Citizen {
	return models.Citizen{
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		PropertyIDs: dto.PropertyIDs,
	}
}

func DTOToLayout(dto DashboardLayoutRequest) models.DashboardLayout {
	return models.DashboardLayout{
		WidgetOrder:   dto.WidgetOrder,
		HiddenWidgets: dto.HiddenWidgets,
	}
}

func DTOToCourse(dto CourseRequest) models.Course {
	return models.Course{Name: dto.Name, Hours: dto.Hours}
}
