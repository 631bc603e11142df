// Package rules derives the set of supporting documents a profile obliges
// the client to provide. Derivation is pure, deterministic and total: an
// incomplete profile simply yields fewer requirements, never an error.
package rules

import (
	"fmt"

	"neofidu/internal/domain/entity"
)

// rule is one entry of the fixed derivation table. Rules are additive and
// non-exclusive; each returns zero or more requirements for the profile.
type rule func(p entity.Profile) []entity.DocumentRequirement

// always emits a requirement unconditionally.
func always(category entity.DocumentCategory, justification string) rule {
	return func(entity.Profile) []entity.DocumentRequirement {
		return []entity.DocumentRequirement{{
			Category:      category,
			Required:      true,
			Justification: justification,
		}}
	}
}

// whenFact emits a requirement when the declared (flag, amount) fact is
// present. The amount alone never triggers the rule.
func whenFact(pick func(entity.Profile) entity.FinancialFact, category entity.DocumentCategory, justification string) rule {
	return func(p entity.Profile) []entity.DocumentRequirement {
		if !pick(p).Present {
			return nil
		}

		return []entity.DocumentRequirement{{
			Category:      category,
			Required:      true,
			Justification: justification,
		}}
	}
}

// whenFlag emits a requirement when a plain boolean fact is set.
func whenFlag(pick func(entity.Profile) bool, category entity.DocumentCategory, justification string) rule {
	return func(p entity.Profile) []entity.DocumentRequirement {
		if !pick(p) {
			return nil
		}

		return []entity.DocumentRequirement{{
			Category:      category,
			Required:      true,
			Justification: justification,
		}}
	}
}

// employmentDocuments maps each employment status to its document category.
var employmentDocuments = map[entity.EmploymentStatus]entity.DocumentCategory{
	entity.EmploymentEmployed:    entity.DocSalary,
	entity.EmploymentIndependent: entity.DocBusinessAccounts,
	entity.EmploymentRetired:     entity.DocPension,
	entity.EmploymentUnemployed:  entity.DocUnemployment,
}

var employmentJustifications = map[entity.DocumentCategory]string{
	entity.DocSalary:           "salary certificate for adult %d",
	entity.DocBusinessAccounts: "business accounts for adult %d (independent activity)",
	entity.DocPension:          "pension statement for adult %d",
	entity.DocUnemployment:     "unemployment benefit statement for adult %d",
}

// perAdultEmployment branches by employment status, evaluated per adult for
// couples; duplicate categories are unioned later by Derive.
func perAdultEmployment(p entity.Profile) []entity.DocumentRequirement {
	var out []entity.DocumentRequirement
	for adult := 1; adult <= p.AdultCount(); adult++ {
		status := p.EmploymentOf(adult)
		category, ok := employmentDocuments[status]
		if !ok {
			continue
		}
		out = append(out, entity.DocumentRequirement{
			Category:      category,
			Required:      true,
			Justification: fmt.Sprintf(employmentJustifications[category], adult),
		})
	}

	return out
}

// derivationTable is evaluated top to bottom; order fixes the output order.
var derivationTable = []rule{
	always(entity.DocBank, "bank statements are required for every filing"),
	always(entity.DocInsurance, "health insurance premium statement is required for every filing"),
	perAdultEmployment,
	whenFlag(func(p entity.Profile) bool { return p.HasStocks }, entity.DocStocks,
		"statement of securities and custody accounts"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.Pillar3a }, entity.DocPillar3a,
		"pillar 3a contribution attestation"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.GuardCosts }, entity.DocGuardCosts,
		"receipts for declared child guard costs"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.AlimonyPaid }, entity.DocAlimonyPaid,
		"proof of alimony payments made"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.AlimonyReceived }, entity.DocAlimonyReceived,
		"proof of alimony payments received"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.Donations }, entity.DocDonations,
		"donation receipts"),
	whenFact(func(p entity.Profile) entity.FinancialFact { return p.Debts }, entity.DocDebts,
		"statement of outstanding debts and interest"),
	whenFlag(func(p entity.Profile) bool { return p.OwnsProperty }, entity.DocPropertyValuation,
		"official valuation for each declared property"),
	whenFlag(func(p entity.Profile) bool { return p.OwnsProperty && p.HasMortgage }, entity.DocMortgage,
		"mortgage interest statement"),
	whenFlag(func(p entity.Profile) bool { return p.OwnsProperty && p.HasRenovations }, entity.DocRenovations,
		"invoices for value-preserving renovation work"),
}

// Derive evaluates the fixed rule table against the profile and returns the
// ordered requirement list. A category appears at most once even when
// several rules would add it; the first justification wins.
func Derive(p entity.Profile) []entity.DocumentRequirement {
	seen := make(map[entity.DocumentCategory]struct{}, len(derivationTable))
	out := make([]entity.DocumentRequirement, 0, len(derivationTable))

	for _, r := range derivationTable {
		for _, req := range r(p) {
			if _, dup := seen[req.Category]; dup {
				continue
			}
			seen[req.Category] = struct{}{}
			out = append(out, req)
		}
	}

	return out
}

// RequiredCategories projects the required subset of a derived list.
func RequiredCategories(reqs []entity.DocumentRequirement) []entity.DocumentCategory {
	out := make([]entity.DocumentCategory, 0, len(reqs))
	for _, r := range reqs {
		if r.Required {
			out = append(out, r.Category)
		}
	}

	return out
}

// MissingRequired returns the required categories not covered by the
// uploaded set, preserving derivation order.
func MissingRequired(reqs []entity.DocumentRequirement, uploaded []entity.DocumentCategory) []entity.DocumentCategory {
	have := make(map[entity.DocumentCategory]struct{}, len(uploaded))
	for _, c := range uploaded {
		have[c] = struct{}{}
	}

	var missing []entity.DocumentCategory
	for _, c := range RequiredCategories(reqs) {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}

	return missing
}

// AllRequiredSatisfied reports whether every required category is covered.
func AllRequiredSatisfied(reqs []entity.DocumentRequirement, uploaded []entity.DocumentCategory) bool {
	return len(MissingRequired(reqs, uploaded)) == 0
}
