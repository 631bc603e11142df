// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ClientCategory classifies who the tax request is filed for.
type ClientCategory string

const (
	CategoryPrivate     ClientCategory = "private"
	CategoryIndependent ClientCategory = "independent"
	CategoryCouple      ClientCategory = "couple"
)

// EmploymentStatus is the declared employment situation of one adult.
type EmploymentStatus string

const (
	EmploymentEmployed    EmploymentStatus = "employed"
	EmploymentIndependent EmploymentStatus = "independent"
	EmploymentRetired     EmploymentStatus = "retired"
	EmploymentUnemployed  EmploymentStatus = "unemployed"
)

// DeliveryMethod is how the client hands over supporting documents.
type DeliveryMethod string

const (
	DeliveryElectronic DeliveryMethod = "electronic"
	DeliveryPostal     DeliveryMethod = "postal"
)

// DeadlineTier is the requested turnaround for the filing.
type DeadlineTier string

const (
	DeadlineStandard DeadlineTier = "standard"
	DeadlineExtended DeadlineTier = "extended"
	DeadlineExpress  DeadlineTier = "express"
)

// FinancialFact is a declared (flag, amount) pair. The amount is expressed
// in centimes and is meaningless while Present is false: derivation and
// pricing must never infer an obligation from a non-zero amount alone.
type FinancialFact struct {
	Present        bool  `json:"present"`
	AmountCentimes int64 `json:"amount_centimes"`
}

// Profile is the evolving answer set describing one client's tax situation.
// It carries no identity of its own; a draft owns it until submission, after
// which an immutable snapshot lives on the SubmissionRecord.
type Profile struct {
	Canton   string         `json:"canton"`
	Category ClientCategory `json:"category"`

	// Employment of adult 1 and, for couples only, adult 2.
	Employment        EmploymentStatus `json:"employment"`
	EmploymentPartner EmploymentStatus `json:"employment_partner,omitempty"`

	HasChildren   bool          `json:"has_children"`
	ChildrenCount int           `json:"children_count"`
	GuardCosts    FinancialFact `json:"guard_costs"`

	Pillar3a        FinancialFact `json:"pillar3a"`
	Donations       FinancialFact `json:"donations"`
	Debts           FinancialFact `json:"debts"`
	AlimonyPaid     FinancialFact `json:"alimony_paid"`
	AlimonyReceived FinancialFact `json:"alimony_received"`

	HasStocks  bool `json:"has_stocks"`
	StockCount int  `json:"stock_count"`

	OwnsProperty   bool `json:"owns_property"`
	PropertyCount  int  `json:"property_count"`
	HasMortgage    bool `json:"has_mortgage"`
	HasRenovations bool `json:"has_renovations"`

	Workplaces []Workplace `json:"workplaces"`

	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	ExpertReview   bool           `json:"expert_review"`
	Deadline       DeadlineTier   `json:"deadline"`

	// Certified is the client's confirmation that the declared facts are
	// complete and truthful. Required before submission.
	Certified bool `json:"certified"`
}

// AdultCount returns how many adults the profile declares facts for.
func (p Profile) AdultCount() int {
	if p.Category == CategoryCouple {
		return 2
	}

	return 1
}

// EmploymentOf returns the employment status of the given adult (1-based).
func (p Profile) EmploymentOf(adult int) EmploymentStatus {
	if adult == 2 {
		return p.EmploymentPartner
	}

	return p.Employment
}

// HasCommuteFor reports whether the given adult declared at least one
// workplace with a usable transport mode, or explicitly declared no commute.
// The situation step cannot be advanced until this holds for every adult.
func (p Profile) HasCommuteFor(adult int) bool {
	for _, w := range p.Workplaces {
		if w.Adult != adult {
			continue
		}
		if w.Transport != "" {
			return true
		}
	}

	return false
}
