package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderUC "thali/internal/application/order/usecases"
	apptestutil "thali/internal/application/testutil"
	"thali/internal/domain/catalog"
	"thali/internal/interfaces/http/handlers/testutil"
	"thali/internal/shared/logger"
)

func newPriceHandlerFixture(t *testing.T) (*OrderHandler, *catalog.AddOn) {
	t.Helper()
	menuItemRepo := apptestutil.NewMockMenuItemRepository()
	addOnRepo := apptestutil.NewMockAddOnRepository()

	item, err := catalog.NewMenuItem("chicken", 100, 30, 450)
	require.NoError(t, err)
	menuItemRepo.AddItem(item)

	kefir, err := catalog.NewAddOn("Kefir 500ml", 80, true)
	require.NoError(t, err)
	addOnRepo.AddAddOn(kefir)

	uc := orderUC.NewComputePriceUseCase(menuItemRepo, addOnRepo, logger.NewNop())
	return NewOrderHandler(nil, uc, nil, nil, logger.NewNop()), kefir
}

func TestOrderHandler_ComputePrice_ZeroQuantityAddonAccepted(t *testing.T) {
	handler, kefir := newPriceHandlerFixture(t)

	reqBody := map[string]any{
		"protein":       "CHICKEN",
		"days":          12,
		"meals_per_day": 2,
		"addons": map[uint]map[string]any{
			kefir.ID(): {"quantity": 0, "frequency": "daily"},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/pricing/preview", reqBody)

	handler.ComputePrice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	// Zero-quantity rows contribute nothing: 100 x 12 x 2 less 3% = 2328.
	assert.Contains(t, string(resp.Data), `"base_plan_price":2328`)
	assert.Contains(t, string(resp.Data), `"addon_total":0`)
}

func TestOrderHandler_ComputePrice_NegativeQuantityRejected(t *testing.T) {
	handler, kefir := newPriceHandlerFixture(t)

	reqBody := map[string]any{
		"protein": "CHICKEN",
		"days":    12,
		"addons": map[uint]map[string]any{
			kefir.ID(): {"quantity": -1, "frequency": "daily"},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/pricing/preview", reqBody)

	handler.ComputePrice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
