package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealDiscountPercent_Brackets(t *testing.T) {
	tests := []struct {
		name string
		days int
		want float64
	}{
		{"single day", 1, 0},
		{"upper edge of free bracket", 6, 0},
		{"first discounted day", 7, 3},
		{"middle of first bracket", 12, 3},
		{"second bracket start", 13, 5},
		{"second bracket end", 18, 5},
		{"top bracket start", 19, 7},
		{"deep in top bracket", 30, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MealDiscountPercent(tt.days))
		})
	}
}

func TestMealDiscountPercent_MonotonicNonDecreasing(t *testing.T) {
	prev := float64(0)
	for days := 1; days <= 30; days++ {
		cur := MealDiscountPercent(days)
		assert.GreaterOrEqual(t, cur, prev, "discount regressed at days=%d", days)
		prev = cur
	}
}

func TestKefirDiscountPercent_Brackets(t *testing.T) {
	assert.Equal(t, float64(0), KefirDiscountPercent(6))
	assert.Equal(t, float64(10), KefirDiscountPercent(7))
	assert.Equal(t, float64(20), KefirDiscountPercent(13))
	assert.Equal(t, 27.5, KefirDiscountPercent(19))
}

func TestBasePlanPrice(t *testing.T) {
	tests := []struct {
		name        string
		unitPrice   int
		days        int
		mealsPerDay int
		want        int
	}{
		{"one day no discount", 150, 1, 2, 300},
		{"six days still full price", 150, 6, 2, 1800},
		{"seven days takes 3 percent", 150, 7, 2, 2037},
		{"max bracket", 200, 24, 2, 8928},
		{"rounding half up", 101, 7, 1, 686}, // 707*0.97 = 685.79
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasePlanPrice(tt.unitPrice, tt.days, tt.mealsPerDay))
		})
	}
}

func TestBasePlanPrice_MatchesFormula(t *testing.T) {
	units := []int{80, 101, 150, 249}
	meals := []int{1, 2}
	for _, u := range units {
		for days := 1; days <= 30; days++ {
			for _, m := range meals {
				want := int(math.Round(float64(u) * float64(days) * float64(m) * (1 - MealDiscountPercent(days)/100)))
				assert.Equal(t, want, BasePlanPrice(u, days, m), "unit=%d days=%d meals=%d", u, days, m)
			}
		}
	}
}

func TestDeliveryFee(t *testing.T) {
	assert.Equal(t, 50, DeliveryFee(1))
	assert.Equal(t, 250, DeliveryFee(5))
	assert.Equal(t, 300, DeliveryFee(6))
	// Flat above the threshold regardless of length.
	assert.Equal(t, 300, DeliveryFee(30))
}

func TestAddonTotal(t *testing.T) {
	rates := map[uint]AddonRate{
		1: {Name: "Boiled Eggs", UnitPrice: 30},
		2: {Name: "Kefir Bottle", UnitPrice: 100},
		3: {Name: "Peanut Chikki", UnitPrice: 40},
	}

	t.Run("once frequency ignores days", func(t *testing.T) {
		sel := map[uint]AddonSelection{1: {Quantity: 2, Frequency: FrequencyOnce}}
		assert.Equal(t, 60, AddonTotal(sel, rates, 20))
	})

	t.Run("daily frequency multiplies by days", func(t *testing.T) {
		sel := map[uint]AddonSelection{1: {Quantity: 2, Frequency: FrequencyDaily}}
		assert.Equal(t, 600, AddonTotal(sel, rates, 10))
	})

	t.Run("kefir addon gets duration discount", func(t *testing.T) {
		// 20% off at 13 days: 100 -> 80, x1 x13 days.
		sel := map[uint]AddonSelection{2: {Quantity: 1, Frequency: FrequencyDaily}}
		assert.Equal(t, 1040, AddonTotal(sel, rates, 13))
	})

	t.Run("kefir match is case-insensitive substring", func(t *testing.T) {
		caps := map[uint]AddonRate{9: {Name: "ORGANIC KEFIR 500ML", UnitPrice: 200}}
		sel := map[uint]AddonSelection{9: {Quantity: 1, Frequency: FrequencyOnce}}
		// 10% off at 7 days.
		assert.Equal(t, 180, AddonTotal(sel, caps, 7))
	})

	t.Run("non-kefir addon unaffected by kefir brackets", func(t *testing.T) {
		sel := map[uint]AddonSelection{3: {Quantity: 1, Frequency: FrequencyOnce}}
		assert.Equal(t, 40, AddonTotal(sel, rates, 19))
	})

	t.Run("unknown addon id skipped", func(t *testing.T) {
		sel := map[uint]AddonSelection{99: {Quantity: 5, Frequency: FrequencyDaily}}
		assert.Equal(t, 0, AddonTotal(sel, rates, 10))
	})

	t.Run("zero quantity skipped", func(t *testing.T) {
		sel := map[uint]AddonSelection{1: {Quantity: 0, Frequency: FrequencyDaily}}
		assert.Equal(t, 0, AddonTotal(sel, rates, 10))
	})
}

func TestComputeQuote(t *testing.T) {
	rates := map[uint]AddonRate{1: {Name: "Boiled Eggs", UnitPrice: 30}}
	sel := map[uint]AddonSelection{1: {Quantity: 1, Frequency: FrequencyDaily}}

	q := ComputeQuote(150, 12, 2, sel, rates)

	// 150*12*2 = 3600, 3% off = 3492.
	assert.Equal(t, 3492, q.BasePlanPrice)
	assert.Equal(t, 360, q.AddonTotal)
	assert.Equal(t, 300, q.DeliveryFee)
	assert.Equal(t, q.BasePlanPrice+q.AddonTotal+q.DeliveryFee, q.GrandTotal)
}

func TestComputeQuote_NoAddons(t *testing.T) {
	q := ComputeQuote(150, 12, 2, nil, nil)
	assert.Equal(t, 3492, q.BasePlanPrice)
	assert.Equal(t, 0, q.AddonTotal)
	assert.Equal(t, 300, q.DeliveryFee)
	assert.Equal(t, 3792, q.GrandTotal)
}
