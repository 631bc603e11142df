package entity

// DocumentCategory is the stable identifier of one supporting-document kind.
// UI, emails and the admin surface agree on meaning through this key alone.
type DocumentCategory string

const (
	DocBank              DocumentCategory = "bank"
	DocInsurance         DocumentCategory = "insurance"
	DocSalary            DocumentCategory = "salary"
	DocPension           DocumentCategory = "pension"
	DocUnemployment      DocumentCategory = "unemployment"
	DocBusinessAccounts  DocumentCategory = "businessAccounts"
	DocStocks            DocumentCategory = "stocks"
	DocPillar3a          DocumentCategory = "pillar3a"
	DocGuardCosts        DocumentCategory = "guardCosts"
	DocAlimonyPaid       DocumentCategory = "alimonyPaid"
	DocAlimonyReceived   DocumentCategory = "alimonyReceived"
	DocDonations         DocumentCategory = "donations"
	DocDebts             DocumentCategory = "debts"
	DocMortgage          DocumentCategory = "mortgage"
	DocRenovations       DocumentCategory = "renovations"
	DocPropertyValuation DocumentCategory = "propertyValuation"
)

// DocumentRequirement is a derived projection of the profile: one document
// category the client must (or may) provide, with a human-readable reason.
// It is recomputed on every profile mutation and never persisted.
type DocumentRequirement struct {
	Category      DocumentCategory `json:"category"`
	Required      bool             `json:"required"`
	Justification string           `json:"justification"`
}
