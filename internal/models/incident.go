package models

import (
	"time"
)

const (
	IncidentStatusInProgress = "In Progress"
	IncidentStatusLocked     = "Locked"
)

// Incident - отчет о выезде в формате NFIRS
type Incident struct {
	ID                     string       `json:"id"`
	IncidentNumber         string       `json:"incident_number"`
	Date                   time.Time    `json:"date"`
	Type                   string       `json:"type"`
	Address                string       `json:"address"`
	PropertyID             string       `json:"property_id,omitempty"`
	Status                 string       `json:"status"`
	RespondingPersonnelIDs []string     `json:"responding_personnel_ids"`
	RespondingApparatusIDs []string     `json:"responding_apparatus_ids"`
	Narrative              string       `json:"narrative,omitempty"`
	Modules                NFIRSModules `json:"modules"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
	LockedAt               *time.Time   `json:"locked_at,omitempty"`
}

// NFIRSModules - вложенные секции отчета NFIRS (A-M)
type NFIRSModules struct {
	Basic      BasicModule `json:"basic"`
	Fire       *FireModule `json:"fire,omitempty"`
	EMS        *EMSModule  `json:"ems,omitempty"`
	Casualties []Casualty  `json:"casualties,omitempty"`
}

type BasicModule struct {
	AlarmTime       *time.Time `json:"alarm_time,omitempty"`
	ArrivalTime     *time.Time `json:"arrival_time,omitempty"`
	ClearedTime     *time.Time `json:"cleared_time,omitempty"`
	ActionsTaken    []string   `json:"actions_taken,omitempty"`
	PropertyLoss    float64    `json:"property_loss"`
	ContentsLoss    float64    `json:"contents_loss"`
	MutualAid       bool       `json:"mutual_aid"`
	HazmatReleased  bool       `json:"hazmat_released"`
	MixedUse        string     `json:"mixed_use,omitempty"`
	PropertyUseCode string     `json:"property_use_code,omitempty"`
}

type FireModule struct {
	AreaOfOrigin      string `json:"area_of_origin"`
	HeatSource        string `json:"heat_source"`
	ItemFirstIgnited  string `json:"item_first_ignited"`
	CauseOfIgnition   string `json:"cause_of_ignition"`
	DetectorPresent   bool   `json:"detector_present"`
	SprinklerPresent  bool   `json:"sprinkler_present"`
	FireSpread        string `json:"fire_spread,omitempty"`
	StoriesAboveGrade int    `json:"stories_above_grade,omitempty"`
}

type EMSModule struct {
	PatientCount     int    `json:"patient_count"`
	ProviderImpress  string `json:"provider_impression,omitempty"`
	Disposition      string `json:"disposition,omitempty"`
	HighestCareLevel string `json:"highest_care_level,omitempty"`
}

type Casualty struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Age      int    `json:"age,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

// Clone возвращает глубокую копию инцидента
func (i Incident) Clone() Incident {
	out := i
	out.RespondingPersonnelIDs = cloneStrings(i.RespondingPersonnelIDs)
	out.RespondingApparatusIDs = cloneStrings(i.RespondingApparatusIDs)
	out.LockedAt = cloneTime(i.LockedAt)
	out.Modules = i.Modules.Clone()
	return out
}

func (m NFIRSModules) Clone() NFIRSModules {
	out := m
	out.Basic.AlarmTime = cloneTime(m.Basic.AlarmTime)
	out.Basic.ArrivalTime = cloneTime(m.Basic.ArrivalTime)
	out.Basic.ClearedTime = cloneTime(m.Basic.ClearedTime)
	out.Basic.ActionsTaken = cloneStrings(m.Basic.ActionsTaken)
	if m.Fire != nil {
		fire := *m.Fire
		out.Fire = &fire
	}
	if m.EMS != nil {
		ems := *m.EMS
		out.EMS = &ems
	}
	if m.Casualties != nil {
		out.Casualties = append([]Casualty(nil), m.Casualties...)
	}
	return out
}

// IncidentPatch - частичное обновление инцидента, nil-поля не меняются
type IncidentPatch struct {
	Date                   *time.Time
	Type                   *string
	Address                *string
	PropertyID             *string
	Status                 *string
	RespondingPersonnelIDs *[]string
	RespondingApparatusIDs *[]string
	Narrative              *string
	Modules                *NFIRSModules
}

func (p IncidentPatch) Apply(i *Incident) {
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Address != nil {
		i.Address = *p.Address
	}
	if p.PropertyID != nil {
		i.PropertyID = *p.PropertyID
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.RespondingPersonnelIDs != nil {
		i.RespondingPersonnelIDs = cloneStrings(*p.RespondingPersonnelIDs)
	}
	if p.RespondingApparatusIDs != nil {
		i.RespondingApparatusIDs = cloneStrings(*p.RespondingApparatusIDs)
	}
	if p.Narrative != nil {
		i.Narrative = *p.Narrative
	}
	if p.Modules != nil {
		i.Modules = p.Modules.Clone()
	}
}

// IncidentFilter - фильтр списка инцидентов
type IncidentFilter struct {
	Type   string
	Status string
	Search string
	From   *time.Time
	To     *time.Time
}
