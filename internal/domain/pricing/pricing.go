// Package pricing computes meal-plan quotes: tiered plan discounts, addon
// line pricing and the delivery fee. Everything here is pure computation;
// prices are integer currency units.
package pricing

import "math"

// Frequency says how often an addon is delivered over the plan.
type Frequency string

const (
	// FrequencyOnce bills the addon a single time.
	FrequencyOnce Frequency = "once"
	// FrequencyDaily bills the addon once per plan day.
	FrequencyDaily Frequency = "daily"
)

// IsValid reports whether f is a known frequency.
func (f Frequency) IsValid() bool {
	return f == FrequencyOnce || f == FrequencyDaily
}

// AddonSelection is one chosen addon line: how many units and how often.
type AddonSelection struct {
	Quantity  int       `json:"quantity"`
	Frequency Frequency `json:"frequency"`
}

// AddonRate is the catalog price of an addon at quote time.
type AddonRate struct {
	Name      string
	UnitPrice int
}

// Quote is a fully priced plan, with the components broken out so clients
// can show the math before committing an order.
type Quote struct {
	BasePlanPrice int `json:"base_plan_price"`
	AddonTotal    int `json:"addon_total"`
	DeliveryFee   int `json:"delivery_fee"`
	GrandTotal    int `json:"grand_total"`
}

// MealDiscountPercent returns the tiered plan discount. Brackets are
// inclusive on the lower bound; the discount starts strictly above 6 days.
func MealDiscountPercent(days int) float64 {
	switch {
	case days >= 19:
		return 7
	case days >= 13:
		return 5
	case days >= 7:
		return 3
	default:
		return 0
	}
}

// KefirDiscountPercent returns the extra duration discount for kefir
// addons. Steeper brackets than the meal discount, same boundaries.
func KefirDiscountPercent(days int) float64 {
	switch {
	case days >= 19:
		return 27.5
	case days >= 13:
		return 20
	case days >= 7:
		return 10
	default:
		return 0
	}
}

// BasePlanPrice prices the meals themselves:
// unitPrice x days x mealsPerDay, less the tiered discount, rounded half
// away from zero.
func BasePlanPrice(unitPrice, days, mealsPerDay int) int {
	gross := float64(unitPrice) * float64(days) * float64(mealsPerDay)
	return roundHalfAway(gross * (1 - MealDiscountPercent(days)/100))
}

// AddonTotal sums the addon lines. Selections with zero quantity or an id
// missing from rates are skipped silently; the latter lets stale client
// carts survive catalog edits. Daily lines multiply by the plan length.
func AddonTotal(selections map[uint]AddonSelection, rates map[uint]AddonRate, days int) int {
	total := 0
	for id, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}
		rate, ok := rates[id]
		if !ok {
			continue
		}

		unit := discountedUnitPrice(rate, days)
		line := unit * float64(sel.Quantity)
		if sel.Frequency == FrequencyDaily {
			line *= float64(days)
		}
		total += roundHalfAway(line)
	}
	return total
}

// discountedUnitPrice applies the kefir duration discount when the addon
// name matches. The rule is keyed off the display name by an exact
// case-insensitive substring match; see IsKefirAddon.
func discountedUnitPrice(rate AddonRate, days int) float64 {
	unit := float64(rate.UnitPrice)
	if IsKefirAddon(rate.Name) {
		unit *= 1 - KefirDiscountPercent(days)/100
	}
	return unit
}

// DeliveryFee charges per day up to five days, then a flat fee. The flat
// rate above the threshold is a deliberate bulk-pricing cliff.
func DeliveryFee(days int) int {
	if days <= 5 {
		return 50 * days
	}
	return 300
}

// ComputeQuote prices a whole plan.
func ComputeQuote(unitPrice, days, mealsPerDay int, selections map[uint]AddonSelection, rates map[uint]AddonRate) Quote {
	base := BasePlanPrice(unitPrice, days, mealsPerDay)
	addons := AddonTotal(selections, rates, days)
	fee := DeliveryFee(days)
	return Quote{
		BasePlanPrice: base,
		AddonTotal:    addons,
		DeliveryFee:   fee,
		GrandTotal:    base + addons + fee,
	}
}

// roundHalfAway rounds to the nearest integer, halves away from zero.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}
