package pricing

import (
	"testing"

	"neofidu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestQuote_ScenarioCoupleWithChildren(t *testing.T) {
	profile := entity.Profile{
		Category:          entity.CategoryCouple,
		Employment:        entity.EmploymentEmployed,
		EmploymentPartner: entity.EmploymentRetired,
		HasChildren:       true,
		ChildrenCount:     2,
		Pillar3a:          entity.FinancialFact{Present: true, AmountCentimes: 688200},
		DeliveryMethod:    entity.DeliveryElectronic,
		Deadline:          entity.DeadlineStandard,
	}

	price := Quote(profile)

	// 50.00 base + 20.00 couple + 2 x 10.00 children
	assert.Equal(t, Centimes(9000), price.Total)
	assert.Equal(t, "CHF", price.Currency)
	assert.Equal(t, price.Total, price.Net+price.Tax)
}

func TestQuote_VATReconciliation(t *testing.T) {
	// Sweep option combinations; the inclusive VAT split must reconcile
	// exactly at centime precision for every total.
	categoriesList := []entity.ClientCategory{entity.CategoryPrivate, entity.CategoryIndependent, entity.CategoryCouple}
	deadlines := []entity.DeadlineTier{entity.DeadlineStandard, entity.DeadlineExtended, entity.DeadlineExpress}
	deliveries := []entity.DeliveryMethod{entity.DeliveryElectronic, entity.DeliveryPostal}

	for _, category := range categoriesList {
		for _, deadline := range deadlines {
			for _, delivery := range deliveries {
				for children := 0; children <= 4; children++ {
					for properties := 0; properties <= 3; properties++ {
						profile := entity.Profile{
							Category:       category,
							HasChildren:    children > 0,
							ChildrenCount:  children,
							OwnsProperty:   properties > 0,
							PropertyCount:  properties,
							DeliveryMethod: delivery,
							Deadline:       deadline,
							ExpertReview:   children%2 == 0,
							HasStocks:      properties%2 == 1,
							StockCount:     properties * 7,
						}

						price := Quote(profile)
						assert.Equal(t, price.Total, price.Net+price.Tax,
							"net+tax must equal total for %+v", profile)
						assert.GreaterOrEqual(t, price.Tax, Centimes(0))
					}
				}
			}
		}
	}
}

func TestQuote_MonotonicInChildren(t *testing.T) {
	prev := Centimes(0)
	for children := 0; children <= 6; children++ {
		profile := entity.Profile{
			Category:      entity.CategoryPrivate,
			HasChildren:   children > 0,
			ChildrenCount: children,
		}
		total := Quote(profile).Total
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestQuote_MonotonicInProperties(t *testing.T) {
	prev := Centimes(0)
	for properties := 0; properties <= 6; properties++ {
		profile := entity.Profile{
			Category:      entity.CategoryPrivate,
			OwnsProperty:  properties > 0,
			PropertyCount: properties,
		}
		total := Quote(profile).Total
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestQuote_DeadlineTierOrdering(t *testing.T) {
	quoteFor := func(tier entity.DeadlineTier) Centimes {
		return Quote(entity.Profile{Category: entity.CategoryPrivate, Deadline: tier}).Total
	}

	standard := quoteFor(entity.DeadlineStandard)
	extended := quoteFor(entity.DeadlineExtended)
	express := quoteFor(entity.DeadlineExpress)

	assert.Less(t, standard, extended)
	assert.Less(t, extended, express)
	// Express is materially more expensive, not a marginal step.
	assert.GreaterOrEqual(t, express-standard, Centimes(4000))
}

func TestQuote_StockSurchargeThreshold(t *testing.T) {
	below := Quote(entity.Profile{HasStocks: true, StockCount: StockSurchargeThreshold})
	above := Quote(entity.Profile{HasStocks: true, StockCount: StockSurchargeThreshold + 1})

	assert.Equal(t, StockSurcharge, above.Total-below.Total)
}

func TestQuote_StockFlagGuardsSurcharge(t *testing.T) {
	// A stale stock count without the flag must not price the surcharge.
	price := Quote(entity.Profile{HasStocks: false, StockCount: 50})
	assert.Equal(t, Quote(entity.Profile{}).Total, price.Total)
}

func TestSplitNet_RoundHalfUp(t *testing.T) {
	tests := []struct {
		total Centimes
		net   Centimes
	}{
		{total: 0, net: 0},
		{total: 1081, net: 1000},
		{total: 9000, net: 8326},  // 9000/1.081 = 8325.624...
		{total: 5000, net: 4625},  // 4625.346...
		{total: 10810, net: 10000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.net, splitNet(tt.total), "total %d", tt.total)
	}
}
