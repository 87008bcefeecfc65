package models

import "time"

const (
	ApparatusStatusInService    = "In Service"
	ApparatusStatusOutOfService = "Out of Service"
	ApparatusStatusMaintenance  = "Maintenance"
)

type Apparatus struct {
	ID            string          `json:"id"`
	UnitID        string          `json:"unit_id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	VIN           string          `json:"vin,omitempty"`
	Mileage       float64         `json:"mileage"`
	EngineHours   float64         `json:"engine_hours"`
	VitalsHistory []VitalsReading `json:"vitals_history"`
	Compartments  []Compartment   `json:"compartments"`
}

// VitalsReading - показания пробега и моточасов, новые в начале списка
type VitalsReading struct {
	Date        time.Time `json:"date"`
	Mileage     float64   `json:"mileage"`
	EngineHours float64   `json:"engine_hours"`
	FuelLevel   float64   `json:"fuel_level"`
	RecordedBy  string    `json:"recorded_by,omitempty"`
}

type Compartment struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Items []CompartmentItem `json:"items"`
}

type CompartmentItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	AssetID  string `json:"asset_id,omitempty"`
}

func (a Apparatus) Clone() Apparatus {
	out := a
	if a.VitalsHistory != nil {
		out.VitalsHistory = append([]VitalsReading(nil), a.VitalsHistory...)
	}
	if a.Compartments != nil {
		out.Compartments = make([]Compartment, len(a.Compartments))
		for i, c := range a.Compartments {
			if c.Items != nil {
				c.Items = append([]CompartmentItem(nil), c.Items...)
			}
			out.Compartments[i] = c
		}
	}
	return out
}

type ApparatusPatch struct {
	UnitID       *string
	Type         *string
	Status       *string
	VIN          *string
	Compartments *[]Compartment
}

func (p ApparatusPatch) Apply(a *Apparatus) {
	if p.UnitID != nil {
		a.UnitID = *p.UnitID
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.VIN != nil {
		a.VIN = *p.VIN
	}
	if p.Compartments != nil {
		a.Compartments = Apparatus{Compartments: *p.Compartments}.Clone().Compartments
	}
}

type ApparatusFilter struct {
	Status string
	Type   string
	Search string
}
