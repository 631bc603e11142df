// Package pricing computes the deterministic price of a filing from the
// declared profile. All arithmetic is integer centimes; the quoted total is
// VAT-inclusive and split exactly into net and tax portions.
package pricing

import "neofidu/internal/domain/entity"

// Centimes is an amount of money in hundredths of a Swiss franc.
type Centimes int64

// Fee schedule. The base fee covers a single private filing; every other
// entry is an additive surcharge.
const (
	BaseFee              Centimes = 5000
	CoupleSurcharge      Centimes = 2000
	IndependentSurcharge Centimes = 4000
	PerChildFee          Centimes = 1000
	PerPropertyFee       Centimes = 1500
	StockSurcharge       Centimes = 2000
	PostalSurcharge      Centimes = 1000
	ExpertReviewFee      Centimes = 3000
	ExtendedDeadlineFee  Centimes = 1500
	ExpressDeadlineFee   Centimes = 6000

	// StockSurchargeThreshold is the custody position count above which the
	// stock surcharge applies.
	StockSurchargeThreshold = 10

	// VAT is charged inclusively at 8.1%: total = net * 1081/1000.
	vatNumerator   = 1081
	vatDenominator = 1000

	Currency = "CHF"
)

// LineItem is one labelled component of a quote.
type LineItem struct {
	Label  string   `json:"label"`
	Amount Centimes `json:"amount"`
}

// Price is a VAT-inclusive quote. Net + Tax == Total holds exactly under
// round-half-up at centime precision.
type Price struct {
	Total    Centimes   `json:"total"`
	Net      Centimes   `json:"net"`
	Tax      Centimes   `json:"tax"`
	Currency string     `json:"currency"`
	Items    []LineItem `json:"items"`
}

// Quote prices the profile. Deterministic: equal profiles quote equally.
func Quote(p entity.Profile) Price {
	items := []LineItem{{Label: "base fee", Amount: BaseFee}}

	switch p.Category {
	case entity.CategoryCouple:
		items = append(items, LineItem{Label: "couple filing", Amount: CoupleSurcharge})
	case entity.CategoryIndependent:
		items = append(items, LineItem{Label: "independent activity", Amount: IndependentSurcharge})
	}

	if p.HasChildren && p.ChildrenCount > 0 {
		items = append(items, LineItem{
			Label:  "children",
			Amount: PerChildFee * Centimes(p.ChildrenCount),
		})
	}

	if p.OwnsProperty && p.PropertyCount > 0 {
		items = append(items, LineItem{
			Label:  "properties",
			Amount: PerPropertyFee * Centimes(p.PropertyCount),
		})
	}

	if p.HasStocks && p.StockCount > StockSurchargeThreshold {
		items = append(items, LineItem{Label: "large securities portfolio", Amount: StockSurcharge})
	}

	if p.DeliveryMethod == entity.DeliveryPostal {
		items = append(items, LineItem{Label: "postal document handling", Amount: PostalSurcharge})
	}

	if p.ExpertReview {
		items = append(items, LineItem{Label: "expert review", Amount: ExpertReviewFee})
	}

	switch p.Deadline {
	case entity.DeadlineExtended:
		items = append(items, LineItem{Label: "extended deadline", Amount: ExtendedDeadlineFee})
	case entity.DeadlineExpress:
		items = append(items, LineItem{Label: "express deadline", Amount: ExpressDeadlineFee})
	}

	var total Centimes
	for _, item := range items {
		total += item.Amount
	}

	net := splitNet(total)

	return Price{
		Total:    total,
		Net:      net,
		Tax:      total - net,
		Currency: Currency,
		Items:    items,
	}
}

// splitNet divides the inclusive VAT rate out of the total, rounding
// half-up at centime precision. The tax portion is defined as the exact
// remainder so that net + tax always reconciles with the total.
func splitNet(total Centimes) Centimes {
	scaled := int64(total) * vatDenominator
	quotient := scaled / vatNumerator
	remainder := scaled % vatNumerator
	if remainder*2 >= vatNumerator {
		quotient++
	}

	return Centimes(quotient)
}
