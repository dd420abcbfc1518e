package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thali/internal/domain/catalog"
	"thali/internal/domain/geo"
	"thali/internal/domain/notification"
	notifvo "thali/internal/domain/notification/valueobjects"
	"thali/internal/domain/order"
	vo "thali/internal/domain/order/valueobjects"
	"thali/internal/domain/pricing"
	"thali/internal/domain/setting"
	"thali/internal/domain/subscription"
	"thali/internal/domain/user"
	"thali/internal/shared/biztime"
	"thali/internal/shared/db"
	"thali/internal/shared/errors"
	"thali/internal/shared/logger"
	"thali/internal/shared/utils"
)

// CreateOrderCommand is the validated request to place a meal-plan order.
type CreateOrderCommand struct {
	UserID      uint
	Protein     string
	Days        int
	MealsPerDay int
	MealTypes   []string
	StartDate   time.Time
	Addons      map[uint]pricing.AddonSelection
	Notes       string
	// Delivery coordinates; nil skips the service-area gate.
	Latitude  *float64
	Longitude *float64
}

// CreateOrderResult reports the created order and derived subscription.
type CreateOrderResult struct {
	Order        *order.Order
	Subscription *subscription.Subscription
	Quote        pricing.Quote
}

// CreateOrderUseCase runs the whole order placement workflow inside one
// transaction: service-area gate, menu lookup, duplicate guard, pricing,
// order + subscription persistence and admin notification rows. Any failure
// rolls back every row.
type CreateOrderUseCase struct {
	txManager        *db.TransactionManager
	orderRepo        order.Repository
	subscriptionRepo subscription.Repository
	menuItemRepo     catalog.MenuItemRepository
	addOnRepo        catalog.AddOnRepository
	userRepo         user.Repository
	notificationRepo notification.Repository
	settings         setting.Provider
	logger           logger.Interface
}

func NewCreateOrderUseCase(
	txManager *db.TransactionManager,
	orderRepo order.Repository,
	subscriptionRepo subscription.Repository,
	menuItemRepo catalog.MenuItemRepository,
	addOnRepo catalog.AddOnRepository,
	userRepo user.Repository,
	notificationRepo notification.Repository,
	settings setting.Provider,
	log logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txManager:        txManager,
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
		menuItemRepo:     menuItemRepo,
		addOnRepo:        addOnRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		settings:         settings,
		logger:           log,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	mealTypes, err := uc.resolveMealTypes(cmd)
	if err != nil {
		return nil, err
	}

	if err := uc.checkServiceArea(ctx, cmd); err != nil {
		return nil, err
	}

	var result *CreateOrderResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.menuItemRepo.GetByName(txCtx, cmd.Protein)
		if err != nil {
			return fmt.Errorf("failed to look up menu item: %w", err)
		}
		if item == nil {
			return errors.NewNotFoundError(fmt.Sprintf("menu item %q not found", cmd.Protein))
		}
		if !item.Available() {
			return errors.NewConflictError(fmt.Sprintf("menu item %q is not available", cmd.Protein))
		}

		window := uc.settings.GetDuplicateWindowSeconds(txCtx)
		since := biztime.NowUTC().Add(-time.Duration(window) * time.Second)
		dup, err := uc.orderRepo.HasRecentDuplicate(txCtx, cmd.UserID, item.Name(), cmd.Days, since)
		if err != nil {
			return fmt.Errorf("failed to check duplicate order: %w", err)
		}
		if dup {
			return errors.NewConflictError("duplicate order detected, please retry in a few seconds")
		}

		rates, err := uc.loadAddonRates(txCtx, cmd.Addons)
		if err != nil {
			return err
		}

		quote := pricing.ComputeQuote(item.Price(), cmd.Days, len(mealTypes), cmd.Addons, rates)

		o, err := order.NewOrder(
			cmd.UserID,
			item.Name(),
			cmd.Days,
			mealTypes,
			quote.GrandTotal,
			biztime.StartOfDayUTC(cmd.StartDate),
			cmd.Addons,
			utils.SanitizeText(cmd.Notes),
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		sub, err := subscription.NewFromOrder(o)
		if err != nil {
			return fmt.Errorf("failed to derive subscription: %w", err)
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("subscription already exists for this order")
			}
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		if err := uc.notifyAdmins(txCtx, o); err != nil {
			return err
		}

		result = &CreateOrderResult{Order: o, Subscription: sub, Quote: quote}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("order creation failed", "error", err, "user_id", cmd.UserID)
		}
		return nil, err
	}

	uc.logger.Infow("order created",
		"order_id", result.Order.ID(),
		"subscription_id", result.Subscription.ID(),
		"user_id", cmd.UserID,
		"protein", result.Order.Protein(),
		"days", result.Order.Days(),
		"total_price", result.Order.TotalPrice())

	return result, nil
}

// resolveMealTypes reconciles the explicit meal type list with mealsPerDay,
// defaulting 1→[LUNCH] and 2→[LUNCH, DINNER].
func (uc *CreateOrderUseCase) resolveMealTypes(cmd CreateOrderCommand) ([]vo.MealType, error) {
	if len(cmd.MealTypes) > 0 {
		mealTypes, err := vo.ParseMealTypes(cmd.MealTypes)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if cmd.MealsPerDay != 0 && cmd.MealsPerDay != len(mealTypes) {
			return nil, errors.NewValidationError("meals_per_day does not match meal_types")
		}
		return mealTypes, nil
	}

	mealTypes, err := vo.DefaultMealTypes(cmd.MealsPerDay)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return mealTypes, nil
}

// checkServiceArea rejects delivery points outside the outlet radius. Orders
// without coordinates skip the gate.
func (uc *CreateOrderUseCase) checkServiceArea(ctx context.Context, cmd CreateOrderCommand) error {
	if cmd.Latitude == nil || cmd.Longitude == nil {
		return nil
	}

	outlet := uc.settings.GetOutletLocation(ctx)
	radius := uc.settings.GetServiceRadiusKm(ctx)
	check := geo.CheckServiceArea(outlet, geo.Point{Latitude: *cmd.Latitude, Longitude: *cmd.Longitude}, radius)
	if !check.Within {
		return errors.NewValidationError(
			fmt.Sprintf("delivery point is %.2f km away, outside the %.1f km service area",
				check.DistanceKm, check.RadiusKm))
	}
	return nil
}

// loadAddonRates resolves unit prices for the selected addons. Unknown ids
// are dropped by the repository and therefore priced at zero.
func (uc *CreateOrderUseCase) loadAddonRates(ctx context.Context, selections map[uint]pricing.AddonSelection) (map[uint]pricing.AddonRate, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(selections))
	for id := range selections {
		ids = append(ids, id)
	}

	addons, err := uc.addOnRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load add-ons: %w", err)
	}

	rates := make(map[uint]pricing.AddonRate, len(addons))
	for _, a := range addons {
		rates[a.ID()] = pricing.AddonRate{Name: a.Name(), UnitPrice: a.Price()}
	}
	return rates, nil
}

// notifyAdmins writes one "New Order" notification row per admin inside the
// order transaction; delivering them is someone else's job.
func (uc *CreateOrderUseCase) notifyAdmins(ctx context.Context, o *order.Order) error {
	admins, err := uc.userRepo.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}

	customer, err := uc.userRepo.GetByID(ctx, o.UserID())
	if err != nil {
		return fmt.Errorf("failed to load ordering user: %w", err)
	}
	customerName := fmt.Sprintf("user #%d", o.UserID())
	if customer != nil {
		customerName = customer.Name()
	}

	slots := make([]string, 0, len(o.MealTypes()))
	for _, mt := range o.MealTypes() {
		slots = append(slots, mt.String())
	}
	content := fmt.Sprintf("Order #%d: %s x %d days (%s) from %s",
		o.ID(), o.Protein(), o.Days(), strings.Join(slots, ", "), customerName)

	orderID := o.ID()
	notifications := make([]*notification.Notification, 0, len(admins))
	for _, admin := range admins {
		n, err := notification.NewNotification(
			admin.ID(),
			notifvo.TypeOrderCreated,
			"New Order",
			content,
			&orderID,
		)
		if err != nil {
			return fmt.Errorf("failed to build admin notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := uc.notificationRepo.BulkCreate(ctx, notifications); err != nil {
		return fmt.Errorf("failed to create admin notifications: %w", err)
	}
	return nil
}
