// Package testutil provides in-memory fakes for testing the application
// layer without a database.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"thali/internal/domain/catalog"
	"thali/internal/domain/delivery"
	"thali/internal/domain/geo"
	"thali/internal/domain/notification"
	"thali/internal/domain/order"
	"thali/internal/domain/setting"
	"thali/internal/domain/subscription"
	vo "thali/internal/domain/subscription/valueobjects"
	"thali/internal/domain/user"
	"thali/internal/shared/biztime"
)

// MockOrderRepository is an in-memory order.Repository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[uint]*order.Order
	nextID uint

	// Error injection
	CreateError error
	GetError    error
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[uint]*order.Order)}
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	if o.ID() == 0 {
		m.nextID++
		if err := o.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.orders[o.ID()] = o
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.orders[id], nil
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*order.Order
	for _, o := range m.orders {
		if o.UserID() == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*order.Order
	for _, o := range m.orders {
		if filter.UserID != nil && o.UserID() != *filter.UserID {
			continue
		}
		if filter.Status != nil && string(o.Status()) != *filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (m *MockOrderRepository) HasRecentDuplicate(ctx context.Context, userID uint, protein string, days int, since time.Time) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.UserID() == userID && o.Protein() == protein && o.Days() == days && !o.CreatedAt().Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockOrderRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// MockSubscriptionRepository is an in-memory subscription.Repository.
type MockSubscriptionRepository struct {
	mu            sync.RWMutex
	subscriptions map[uint]*subscription.Subscription
	nextID        uint

	CreateError error
	UpdateError error
	GetError    error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{subscriptions: make(map[uint]*subscription.Subscription)}
}

// Add seeds a subscription, assigning an ID when unset.
func (m *MockSubscriptionRepository) Add(s *subscription.Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID() == 0 {
		m.nextID++
		_ = s.SetID(m.nextID)
	}
	m.subscriptions[s.ID()] = s
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	if s.ID() == 0 {
		m.nextID++
		if err := s.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.subscriptions[s.ID()] = s
	return nil
}

func (m *MockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.subscriptions[id], nil
}

func (m *MockSubscriptionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return m.GetByID(ctx, id)
}

func (m *MockSubscriptionRepository) GetByOrderID(ctx context.Context, orderID uint) (*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.subscriptions {
		if s.OrderID() == orderID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*subscription.Subscription
	for _, s := range m.subscriptions {
		if s.UserID() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockSubscriptionRepository) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*subscription.Subscription
	for _, s := range m.subscriptions {
		if filter.UserID != nil && s.UserID() != *filter.UserID {
			continue
		}
		if filter.Status != nil && string(s.Status()) != *filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (m *MockSubscriptionRepository) FindExpiredSubscriptions(ctx context.Context) ([]*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := biztime.NowUTC()
	var out []*subscription.Subscription
	for _, s := range m.subscriptions {
		if s.Status() == vo.StatusActive && s.EndDate().Before(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.subscriptions[s.ID()] = s
	return nil
}

// MockPauseRepository is an in-memory subscription.PauseRepository.
type MockPauseRepository struct {
	mu     sync.RWMutex
	pauses []*subscription.Pause
	nextID uint

	CreateError error
}

func NewMockPauseRepository() *MockPauseRepository {
	return &MockPauseRepository{}
}

func (m *MockPauseRepository) Create(ctx context.Context, p *subscription.Pause) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	m.nextID++
	p.SetID(m.nextID)
	m.pauses = append(m.pauses, p)
	return nil
}

func (m *MockPauseRepository) GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.Pause, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*subscription.Pause
	for _, p := range m.pauses {
		if p.SubscriptionID() == subscriptionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPauseRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pauses)
}

// MockMenuItemRepository is an in-memory catalog.MenuItemRepository.
type MockMenuItemRepository struct {
	mu     sync.RWMutex
	items  map[uint]*catalog.MenuItem
	nextID uint

	CreateError error
	GetError    error
}

func NewMockMenuItemRepository() *MockMenuItemRepository {
	return &MockMenuItemRepository{items: make(map[uint]*catalog.MenuItem)}
}

// AddItem seeds a menu item, assigning an ID when unset.
func (m *MockMenuItemRepository) AddItem(item *catalog.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID() == 0 {
		m.nextID++
		_ = item.SetID(m.nextID)
	}
	m.items[item.ID()] = item
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *catalog.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	if item.ID() == 0 {
		m.nextID++
		if err := item.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.items[item.ID()] = item
	return nil
}

func (m *MockMenuItemRepository) GetByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.items[id], nil
}

func (m *MockMenuItemRepository) GetByName(ctx context.Context, name string) (*catalog.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, item := range m.items {
		if item.Name() == name {
			return item, nil
		}
	}
	return nil, nil
}

func (m *MockMenuItemRepository) List(ctx context.Context) ([]*catalog.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*catalog.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID()] = item
	return nil
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// MockAddOnRepository is an in-memory catalog.AddOnRepository.
type MockAddOnRepository struct {
	mu     sync.RWMutex
	addons map[uint]*catalog.AddOn
	nextID uint

	GetError error
}

func NewMockAddOnRepository() *MockAddOnRepository {
	return &MockAddOnRepository{addons: make(map[uint]*catalog.AddOn)}
}

// AddAddOn seeds an addon, assigning an ID when unset.
func (m *MockAddOnRepository) AddAddOn(a *catalog.AddOn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID() == 0 {
		m.nextID++
		_ = a.SetID(m.nextID)
	}
	m.addons[a.ID()] = a
}

func (m *MockAddOnRepository) Create(ctx context.Context, a *catalog.AddOn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID() == 0 {
		m.nextID++
		if err := a.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.addons[a.ID()] = a
	return nil
}

func (m *MockAddOnRepository) GetByID(ctx context.Context, id uint) (*catalog.AddOn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.addons[id], nil
}

func (m *MockAddOnRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.AddOn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	var out []*catalog.AddOn
	for _, id := range ids {
		if a, ok := m.addons[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAddOnRepository) List(ctx context.Context) ([]*catalog.AddOn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*catalog.AddOn, 0, len(m.addons))
	for _, a := range m.addons {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockAddOnRepository) Update(ctx context.Context, a *catalog.AddOn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addons[a.ID()] = a
	return nil
}

func (m *MockAddOnRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.addons, id)
	return nil
}

// MockUserRepository is an in-memory user.Repository.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*user.User
	nextID uint

	CreateError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uint]*user.User)}
}

// AddUser seeds a user, assigning an ID when unset.
func (m *MockUserRepository) AddUser(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID() == 0 {
		m.nextID++
		_ = u.SetID(m.nextID)
	}
	m.users[u.ID()] = u
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	if u.ID() == 0 {
		m.nextID++
		if err := u.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.users[u.ID()] = u
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID()] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*user.User
	for _, u := range m.users {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// MockNotificationRepository is an in-memory notification.Repository.
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[uint]*notification.Notification
	nextID        uint

	BulkCreateError error
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{notifications: make(map[uint]*notification.Notification)}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := n.SetID(m.nextID); err != nil {
		return err
	}
	m.notifications[n.ID()] = n
	return nil
}

func (m *MockNotificationRepository) BulkCreate(ctx context.Context, ns []*notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.BulkCreateError != nil {
		return m.BulkCreateError
	}
	for _, n := range ns {
		m.nextID++
		if err := n.SetID(m.nextID); err != nil {
			return err
		}
		m.notifications[n.ID()] = n
	}
	return nil
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.notifications[id], nil
}

func (m *MockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*notification.Notification
	for _, n := range m.notifications {
		if n.UserID() == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, n := range m.notifications {
		if n.UserID() == userID && n.IsUnread() {
			count++
		}
	}
	return count, nil
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.notifications[id]; ok {
		n.MarkAsRead()
	}
	return nil
}

func (m *MockNotificationRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.notifications)
}

// errDuplicateDeliveryLog mimics the driver's unique-key violation wording
// so errors.IsDuplicateError recognizes it.
var errDuplicateDeliveryLog = errors.New("UNIQUE constraint failed: delivery_logs.subscription_id, delivery_logs.delivery_date")

// MockDeliveryRepository is an in-memory delivery.Repository keyed by
// (subscription, day), mirroring the composite unique index.
type MockDeliveryRepository struct {
	mu     sync.RWMutex
	logs   map[uint]*delivery.Log
	nextID uint

	CreateError error
	GetError    error
}

func NewMockDeliveryRepository() *MockDeliveryRepository {
	return &MockDeliveryRepository{logs: make(map[uint]*delivery.Log)}
}

func (m *MockDeliveryRepository) Create(ctx context.Context, l *delivery.Log) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.logs {
		if existing.SubscriptionID() == l.SubscriptionID() && existing.DeliveryDate().Equal(l.DeliveryDate()) {
			return errDuplicateDeliveryLog
		}
	}
	m.nextID++
	if err := l.SetID(m.nextID); err != nil {
		return err
	}
	m.logs[l.ID()] = l
	return nil
}

func (m *MockDeliveryRepository) GetByID(ctx context.Context, id uint) (*delivery.Log, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logs[id], nil
}

func (m *MockDeliveryRepository) GetForDay(ctx context.Context, subscriptionID uint, day time.Time) (*delivery.Log, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	date := biztime.DateOf(day)
	for _, l := range m.logs {
		if l.SubscriptionID() == subscriptionID && l.DeliveryDate().Equal(date) {
			return l, nil
		}
	}
	return nil, nil
}

func (m *MockDeliveryRepository) ListForDay(ctx context.Context, day time.Time) ([]*delivery.Log, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	date := biztime.DateOf(day)
	var out []*delivery.Log
	for _, l := range m.logs {
		if l.DeliveryDate().Equal(date) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockDeliveryRepository) ListByAgentForDay(ctx context.Context, agentID uint, day time.Time) ([]*delivery.Log, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	date := biztime.DateOf(day)
	var out []*delivery.Log
	for _, l := range m.logs {
		if l.AgentID() != nil && *l.AgentID() == agentID && l.DeliveryDate().Equal(date) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockDeliveryRepository) ListBySubscription(ctx context.Context, subscriptionID uint) ([]*delivery.Log, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*delivery.Log
	for _, l := range m.logs {
		if l.SubscriptionID() == subscriptionID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockDeliveryRepository) Update(ctx context.Context, l *delivery.Log) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[l.ID()] = l
	return nil
}

func (m *MockDeliveryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.logs)
}

// StubSettings is a fixed-value setting.Provider.
type StubSettings struct {
	Outlet          geo.Point
	RadiusKm        float64
	DuplicateWindow int
}

// NewStubSettings returns a provider preloaded with the default outlet.
func NewStubSettings() *StubSettings {
	return &StubSettings{
		Outlet:          geo.Point{Latitude: 18.654949627383616, Longitude: 73.84475261136429},
		RadiusKm:        5,
		DuplicateWindow: 10,
	}
}

func (s *StubSettings) GetOutletLocation(ctx context.Context) geo.Point { return s.Outlet }
func (s *StubSettings) GetServiceRadiusKm(ctx context.Context) float64  { return s.RadiusKm }
func (s *StubSettings) GetDuplicateWindowSeconds(ctx context.Context) int {
	return s.DuplicateWindow
}

var _ setting.Provider = (*StubSettings)(nil)
