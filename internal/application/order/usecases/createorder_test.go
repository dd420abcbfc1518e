package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"thali/internal/application/testutil"
	"thali/internal/domain/catalog"
	ordervo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	subvo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/domain/user"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

type createOrderFixture struct {
	uc               *CreateOrderUseCase
	orderRepo        *testutil.MockOrderRepository
	subscriptionRepo *testutil.MockSubscriptionRepository
	menuItemRepo     *testutil.MockMenuItemRepository
	addOnRepo        *testutil.MockAddOnRepository
	userRepo         *testutil.MockUserRepository
	notificationRepo *testutil.MockNotificationRepository
	settings         *testutil.StubSettings
}

func newCreateOrderFixture(t *testing.T) *createOrderFixture {
	t.Helper()
	f := &createOrderFixture{
		orderRepo:        testutil.NewMockOrderRepository(),
		subscriptionRepo: testutil.NewMockSubscriptionRepository(),
		menuItemRepo:     testutil.NewMockMenuItemRepository(),
		addOnRepo:        testutil.NewMockAddOnRepository(),
		userRepo:         testutil.NewMockUserRepository(),
		notificationRepo: testutil.NewMockNotificationRepository(),
		settings:         testutil.NewStubSettings(),
	}
	f.uc = NewCreateOrderUseCase(
		testutil.NewTxManager(t),
		f.orderRepo,
		f.subscriptionRepo,
		f.menuItemRepo,
		f.addOnRepo,
		f.userRepo,
		f.notificationRepo,
		f.settings,
		logger.NewNop(),
	)
	return f
}

func (f *createOrderFixture) seedMenuItem(t *testing.T, name string, price int) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(name, price, 30, 450)
	require.NoError(t, err)
	f.menuItemRepo.AddItem(item)
	return item
}

func (f *createOrderFixture) seedAdmin(t *testing.T, email string) *user.User {
	t.Helper()
	admin, err := user.NewUser("Admin", email, "password123", user.RoleAdmin, bcrypt.MinCost)
	require.NoError(t, err)
	f.userRepo.AddUser(admin)
	return admin
}

func TestCreateOrder_Success(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)
	f.seedAdmin(t, "admin@thali.test")

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	result, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        12,
		MealsPerDay: 2,
		StartDate:   start,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// 100 x 12 x 2 = 2400, 3% tier discount = 2328, flat fee 300.
	assert.Equal(t, 2328, result.Quote.BasePlanPrice)
	assert.Equal(t, 300, result.Quote.DeliveryFee)
	assert.Equal(t, 2628, result.Quote.GrandTotal)
	assert.Equal(t, 2628, result.Order.TotalPrice())
	assert.Equal(t, ordervo.StatusPaid, result.Order.Status())
	assert.Equal(t, "CHICKEN", result.Order.Protein())
	assert.Equal(t, []ordervo.MealType{ordervo.MealLunch, ordervo.MealDinner}, result.Order.MealTypes())

	sub := result.Subscription
	require.NotNil(t, sub)
	assert.Equal(t, result.Order.ID(), sub.OrderID())
	assert.Equal(t, subvo.StatusActive, sub.Status())
	assert.Equal(t, 12, sub.DaysRemaining())
	assert.Equal(t, 2, sub.PausesRemaining())
	assert.Equal(t, sub.StartDate().AddDate(0, 0, 12), sub.EndDate())

	assert.Equal(t, 1, f.notificationRepo.Count())
}

func TestCreateOrder_DefaultsSingleMealToLunch(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "paneer", 120)

	result, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      3,
		Protein:     "PANEER",
		Days:        5,
		MealsPerDay: 1,
		StartDate:   time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, []ordervo.MealType{ordervo.MealLunch}, result.Order.MealTypes())
	// Under the 5-day threshold the fee is per day and no tier discount applies.
	assert.Equal(t, 120*5, result.Quote.BasePlanPrice)
	assert.Equal(t, 250, result.Quote.DeliveryFee)
	// Short plans carry no pause credits.
	assert.Equal(t, 0, result.Subscription.PausesRemaining())
}

func TestCreateOrder_UnknownProtein_NoRows(t *testing.T) {
	f := newCreateOrderFixture(t)

	_, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      3,
		Protein:     "UNICORN",
		Days:        7,
		MealsPerDay: 1,
		StartDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, f.orderRepo.Count())
	assert.Equal(t, 0, f.notificationRepo.Count())
}

func TestCreateOrder_DuplicateWithinWindow_Conflict(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)

	cmd := CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        12,
		MealsPerDay: 2,
		StartDate:   time.Now(),
	}
	_, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 1, f.orderRepo.Count())
}

func TestCreateOrder_OutsideServiceArea_RejectedWithDistance(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)

	// Roughly 50 km north of the outlet.
	lat := f.settings.Outlet.Latitude + 0.45
	lng := f.settings.Outlet.Longitude
	_, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        7,
		MealsPerDay: 1,
		StartDate:   time.Now(),
		Latitude:    &lat,
		Longitude:   &lng,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "km away")
	assert.Equal(t, 0, f.orderRepo.Count())
}

func TestCreateOrder_InsideServiceArea_Allowed(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)

	lat := f.settings.Outlet.Latitude + 0.01
	lng := f.settings.Outlet.Longitude
	_, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        7,
		MealsPerDay: 1,
		StartDate:   time.Now(),
		Latitude:    &lat,
		Longitude:   &lng,
	})
	require.NoError(t, err)
}

func TestCreateOrder_MealTypesMismatch_Validation(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)

	_, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        7,
		MealsPerDay: 2,
		MealTypes:   []string{"LUNCH"},
		StartDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateOrder_KefirAddonDiscounted(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)
	kefir, err := catalog.NewAddOn("Kefir 500ml", 80, true)
	require.NoError(t, err)
	f.addOnRepo.AddAddOn(kefir)

	result, err := f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      7,
		Protein:     "CHICKEN",
		Days:        13,
		MealsPerDay: 1,
		StartDate:   time.Now(),
		Addons: map[uint]pricing.AddonSelection{
			kefir.ID(): {Quantity: 1, Frequency: pricing.FrequencyDaily},
		},
	})
	require.NoError(t, err)
	// 80 less the 20% kefir bracket = 64 per day, 13 days.
	assert.Equal(t, 64*13, result.Quote.AddonTotal)
}

func TestCreateOrder_AdminNotificationDetails(t *testing.T) {
	f := newCreateOrderFixture(t)
	f.seedMenuItem(t, "chicken", 100)
	admin := f.seedAdmin(t, "admin@thali.test")
	customer, err := user.NewUser("Asha", "asha@thali.test", "password123", user.RoleCustomer, bcrypt.MinCost)
	require.NoError(t, err)
	f.userRepo.AddUser(customer)

	_, err = f.uc.Execute(context.Background(), CreateOrderCommand{
		UserID:      customer.ID(),
		Protein:     "CHICKEN",
		Days:        12,
		MealsPerDay: 2,
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	rows, _, err := f.notificationRepo.ListByUserID(context.Background(), admin.ID(), 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	content := rows[0].Content()
	assert.Contains(t, content, "CHICKEN")
	assert.Contains(t, content, "12 days")
	assert.Contains(t, content, "LUNCH, DINNER")
	assert.Contains(t, content, "Asha")
}
