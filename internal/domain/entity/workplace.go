package entity

import "github.com/google/uuid"

// TransportMode is how one adult commutes to one employer.
type TransportMode string

const (
	TransportTrain TransportMode = "train"
	TransportCar   TransportMode = "car"
	TransportBike  TransportMode = "bike"
	TransportNone  TransportMode = "none"
)

// Workplace is one (adult, employer) commute record. It is owned exclusively
// by a Profile; the client creates and removes entries during the wizard.
type Workplace struct {
	ID            uuid.UUID     `json:"id"`
	Adult         int           `json:"adult"` // 1-based adult index
	EmployerName  string        `json:"employer_name"`
	Transport     TransportMode `json:"transport"`
	DistanceKm    float64       `json:"distance_km"`
	YearlyDays    int           `json:"yearly_days"`
	Reimbursement string        `json:"reimbursement,omitempty"` // employer reimbursement terms, free text
}
