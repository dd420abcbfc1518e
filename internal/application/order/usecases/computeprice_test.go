package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thali/internal/application/testutil"
	"thali/internal/domain/catalog"
	"thali/internal/domain/pricing"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

func newComputePriceUseCase(t *testing.T) (*ComputePriceUseCase, *testutil.MockMenuItemRepository, *testutil.MockAddOnRepository) {
	t.Helper()
	menuRepo := testutil.NewMockMenuItemRepository()
	addOnRepo := testutil.NewMockAddOnRepository()
	return NewComputePriceUseCase(menuRepo, addOnRepo, logger.NewNop()), menuRepo, addOnRepo
}

func TestComputePrice_TwelveDayTwoMealQuote(t *testing.T) {
	uc, menuRepo, _ := newComputePriceUseCase(t)
	item, err := catalog.NewMenuItem("chicken", 100, 30, 450)
	require.NoError(t, err)
	menuRepo.AddItem(item)

	quote, err := uc.Execute(context.Background(), ComputePriceCommand{
		Protein:     "CHICKEN",
		Days:        12,
		MealsPerDay: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2328, quote.BasePlanPrice)
	assert.Equal(t, 0, quote.AddonTotal)
	assert.Equal(t, 300, quote.DeliveryFee)
	assert.Equal(t, 2628, quote.GrandTotal)
}

func TestComputePrice_MealTypesImplyMealsPerDay(t *testing.T) {
	uc, menuRepo, _ := newComputePriceUseCase(t)
	item, err := catalog.NewMenuItem("chicken", 100, 30, 450)
	require.NoError(t, err)
	menuRepo.AddItem(item)

	quote, err := uc.Execute(context.Background(), ComputePriceCommand{
		Protein:   "CHICKEN",
		Days:      3,
		MealTypes: []string{"LUNCH", "DINNER"},
	})
	require.NoError(t, err)
	assert.Equal(t, 600, quote.BasePlanPrice)
	assert.Equal(t, 150, quote.DeliveryFee)
}

func TestComputePrice_UnknownProtein_NotFound(t *testing.T) {
	uc, _, _ := newComputePriceUseCase(t)

	_, err := uc.Execute(context.Background(), ComputePriceCommand{
		Protein:     "UNICORN",
		Days:        7,
		MealsPerDay: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestComputePrice_InvalidMealsPerDay_Validation(t *testing.T) {
	uc, _, _ := newComputePriceUseCase(t)

	_, err := uc.Execute(context.Background(), ComputePriceCommand{
		Protein:     "CHICKEN",
		Days:        7,
		MealsPerDay: 3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestComputePrice_StaleAddonIDsPricedAtZero(t *testing.T) {
	uc, menuRepo, _ := newComputePriceUseCase(t)
	item, err := catalog.NewMenuItem("chicken", 100, 30, 450)
	require.NoError(t, err)
	menuRepo.AddItem(item)

	quote, err := uc.Execute(context.Background(), ComputePriceCommand{
		Protein:     "CHICKEN",
		Days:        3,
		MealsPerDay: 1,
		Addons: map[uint]pricing.AddonSelection{
			999: {Quantity: 2, Frequency: pricing.FrequencyOnce},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, quote.AddonTotal)
}
