package models

import "time"

const (
	PersonnelStatusActive   = "Active"
	PersonnelStatusOnLeave  = "On Leave"
	PersonnelStatusInactive = "Inactive"
)

type Personnel struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Rank            string           `json:"rank"`
	Status          string           `json:"status"`
	Email           string           `json:"email,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	HireDate        time.Time        `json:"hire_date"`
	Certifications  []Certification  `json:"certifications"`
	TrainingHistory []TrainingRecord `json:"training_history"`
}

type Certification struct {
	Name      string     `json:"name"`
	Number    string     `json:"number,omitempty"`
	IssuedOn  time.Time  `json:"issued_on"`
	ExpiresOn *time.Time `json:"expires_on,omitempty"`
}

// TrainingRecord - пройденный курс
type TrainingRecord struct {
	CourseID    string    `json:"course_id"`
	CourseName  string    `json:"course_name"`
	CompletedOn time.Time `json:"completed_on"`
	Hours       float64   `json:"hours"`
}

func (p Personnel) Clone() Personnel {
	out := p
	if p.Certifications != nil {
		out.Certifications = make([]Certification, len(p.Certifications))
		for i, c := range p.Certifications {
			c.ExpiresOn = cloneTime(c.ExpiresOn)
			out.Certifications[i] = c
		}
	}
	if p.TrainingHistory != nil {
		out.TrainingHistory = append([]TrainingRecord(nil), p.TrainingHistory...)
	}
	return out
}

// CompletedCourseIDs возвращает множество пройденных курсов
func (p Personnel) CompletedCourseIDs() map[string]struct{} {
	set := make(map[string]struct{}, len(p.TrainingHistory))
	for _, r := range p.TrainingHistory {
		set[r.CourseID] = struct{}{}
	}
	return set
}

type PersonnelPatch struct {
	Name           *string
	Rank           *string
	Status         *string
	Email          *string
	Phone          *string
	HireDate       *time.Time
	Certifications *[]Certification
}

func (p PersonnelPatch) Apply(person *Personnel) {
	if p.Name != nil {
		person.Name = *p.Name
	}
	if p.Rank != nil {
		person.Rank = *p.Rank
	}
	if p.Status != nil {
		person.Status = *p.Status
	}
	if p.Email != nil {
		person.Email = *p.Email
	}
	if p.Phone != nil {
		person.Phone = *p.Phone
	}
	if p.HireDate != nil {
		person.HireDate = *p.HireDate
	}
	if p.Certifications != nil {
		person.Certifications = Personnel{Certifications: *p.Certifications}.Clone().Certifications
	}
}

type PersonnelFilter struct {
	Status string
	Rank   string
	Search string
}

// Shift - дежурная смена
type Shift struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	PersonnelIDs []string  `json:"personnel_ids"`
}

func (s Shift) Clone() Shift {
	out := s
	out.PersonnelIDs = cloneStrings(s.PersonnelIDs)
	return out
}

// ExposureLog - запись о контакте сотрудника с вредными факторами
type ExposureLog struct {
	ID             string    `json:"id"`
	PersonnelID    string    `json:"personnel_id"`
	IncidentID     string    `json:"incident_id"`
	IncidentNumber string    `json:"incident_number,omitempty"`
	ExposureType   string    `json:"exposure_type"`
	Date           time.Time `json:"date"`
	Notes          string    `json:"notes,omitempty"`
}
