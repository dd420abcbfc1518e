package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"thali/internal/application/testutil"
	deliveryvo "thali/internal/domain/delivery/valueobjects"
	"thali/internal/domain/order"
	ordervo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/subscription"
	"thali/internal/domain/user"
	"thali/internal/shared/biztime"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
)

type deliveryFixture struct {
	deliveryRepo *testutil.MockDeliveryRepository
	subRepo      *testutil.MockSubscriptionRepository
	userRepo     *testutil.MockUserRepository
	sub          *subscription.Subscription
	agent        *user.User
	assign       *AssignDeliveryUseCase
	markReady    *MarkReadyUseCase
	start        *StartDeliveryUseCase
	confirm      *ConfirmDeliveredUseCase
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()
	f := &deliveryFixture{
		deliveryRepo: testutil.NewMockDeliveryRepository(),
		subRepo:      testutil.NewMockSubscriptionRepository(),
		userRepo:     testutil.NewMockUserRepository(),
	}

	o, err := order.NewOrder(7, "CHICKEN", 12,
		[]ordervo.MealType{ordervo.MealLunch}, 1000,
		biztime.StartOfDayUTC(biztime.NowUTC()), nil, "")
	require.NoError(t, err)
	require.NoError(t, o.SetID(1))
	f.sub, err = subscription.NewFromOrder(o)
	require.NoError(t, err)
	f.subRepo.Add(f.sub)

	f.agent, err = user.NewUser("Rider", "rider@thali.test", "password123", user.RoleDelivery, bcrypt.MinCost)
	require.NoError(t, err)
	f.userRepo.AddUser(f.agent)

	tx := testutil.NewTxManager(t)
	log := logger.NewNop()
	f.assign = NewAssignDeliveryUseCase(tx, f.deliveryRepo, f.subRepo, f.userRepo, log)
	f.markReady = NewMarkReadyUseCase(tx, f.deliveryRepo, f.subRepo, log)
	f.start = NewStartDeliveryUseCase(tx, f.deliveryRepo, log)
	f.confirm = NewConfirmDeliveredUseCase(tx, f.deliveryRepo, log)
	return f
}

func TestDeliveryFlow_HappyPath(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	ready, err := f.markReady.Execute(ctx, MarkReadyCommand{SubscriptionID: f.sub.ID()})
	require.NoError(t, err)
	assert.Equal(t, deliveryvo.StatusReady, ready.Status())

	assigned, err := f.assign.Execute(ctx, AssignDeliveryCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        f.agent.ID(),
	})
	require.NoError(t, err)
	assert.Equal(t, deliveryvo.StatusAssigned, assigned.Status())
	assert.Equal(t, ready.ID(), assigned.ID())

	started, err := f.start.Execute(ctx, StartDeliveryCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        f.agent.ID(),
	})
	require.NoError(t, err)
	assert.Equal(t, deliveryvo.StatusOutForDelivery, started.Status())

	confirmed, err := f.confirm.Execute(ctx, ConfirmDeliveredCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        f.agent.ID(),
		Latitude:       18.66,
		Longitude:      73.85,
	})
	require.NoError(t, err)
	assert.Equal(t, deliveryvo.StatusDelivered, confirmed.Status())
	require.NotNil(t, confirmed.Latitude())
	assert.Equal(t, 18.66, *confirmed.Latitude())
	require.NotNil(t, confirmed.DeliveryTime())

	// One row for the whole day regardless of how many operations touched it.
	assert.Equal(t, 1, f.deliveryRepo.Count())
}

func TestDelivery_MarkReadyAfterAssign_NoRegression(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	_, err := f.assign.Execute(ctx, AssignDeliveryCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        f.agent.ID(),
	})
	require.NoError(t, err)

	// A stale mark-ready must not regress ASSIGNED.
	log, err := f.markReady.Execute(ctx, MarkReadyCommand{SubscriptionID: f.sub.ID()})
	require.NoError(t, err)
	assert.Equal(t, deliveryvo.StatusAssigned, log.Status())
}

func TestDelivery_ConfirmTwice_Conflict(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	cmd := ConfirmDeliveredCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        f.agent.ID(),
		Latitude:       18.66,
		Longitude:      73.85,
	}
	_, err := f.assign.Execute(ctx, AssignDeliveryCommand{SubscriptionID: f.sub.ID(), AgentID: f.agent.ID()})
	require.NoError(t, err)
	_, err = f.confirm.Execute(ctx, cmd)
	require.NoError(t, err)

	_, err = f.confirm.Execute(ctx, cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDelivery_MarkReadyAfterDelivered_Conflict(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	_, err := f.assign.Execute(ctx, AssignDeliveryCommand{SubscriptionID: f.sub.ID(), AgentID: f.agent.ID()})
	require.NoError(t, err)
	_, err = f.confirm.Execute(ctx, ConfirmDeliveredCommand{
		SubscriptionID: f.sub.ID(), AgentID: f.agent.ID(), Latitude: 18.66, Longitude: 73.85,
	})
	require.NoError(t, err)

	_, err = f.markReady.Execute(ctx, MarkReadyCommand{SubscriptionID: f.sub.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDelivery_AssignNonAgent_Rejected(t *testing.T) {
	f := newDeliveryFixture(t)
	customer, err := user.NewUser("Customer", "c@thali.test", "password123", user.RoleCustomer, bcrypt.MinCost)
	require.NoError(t, err)
	f.userRepo.AddUser(customer)

	_, err = f.assign.Execute(context.Background(), AssignDeliveryCommand{
		SubscriptionID: f.sub.ID(),
		AgentID:        customer.ID(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDelivery_StartByWrongAgent_Rejected(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()
	other, err := user.NewUser("Other Rider", "other@thali.test", "password123", user.RoleDelivery, bcrypt.MinCost)
	require.NoError(t, err)
	f.userRepo.AddUser(other)

	_, err = f.assign.Execute(ctx, AssignDeliveryCommand{SubscriptionID: f.sub.ID(), AgentID: f.agent.ID()})
	require.NoError(t, err)

	_, err = f.start.Execute(ctx, StartDeliveryCommand{SubscriptionID: f.sub.ID(), AgentID: other.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDelivery_PausedSubscription_NoLedgerRow(t *testing.T) {
	f := newDeliveryFixture(t)
	require.NoError(t, f.sub.Pause(biztime.NowUTC()))

	_, err := f.markReady.Execute(context.Background(), MarkReadyCommand{SubscriptionID: f.sub.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 0, f.deliveryRepo.Count())
}

func TestDelivery_SeparateDaysGetSeparateRows(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()
	today := biztime.DateOf(biztime.NowUTC())

	_, err := f.markReady.Execute(ctx, MarkReadyCommand{SubscriptionID: f.sub.ID(), Day: today})
	require.NoError(t, err)
	_, err = f.markReady.Execute(ctx, MarkReadyCommand{SubscriptionID: f.sub.ID(), Day: today.Add(24 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, 2, f.deliveryRepo.Count())
}
