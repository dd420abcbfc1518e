package catalog

import "context"

// MenuItemRepository persists menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	GetByID(ctx context.Context, id uint) (*MenuItem, error)
	// GetByName looks up a menu item by its exact display name. Returns
	// (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*MenuItem, error)
	List(ctx context.Context) ([]*MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uint) error
}

// AddOnRepository persists addons.
type AddOnRepository interface {
	Create(ctx context.Context, addon *AddOn) error
	GetByID(ctx context.Context, id uint) (*AddOn, error)
	// GetByIDs fetches the given addons, silently omitting unknown ids.
	GetByIDs(ctx context.Context, ids []uint) ([]*AddOn, error)
	List(ctx context.Context) ([]*AddOn, error)
	Update(ctx context.Context, addon *AddOn) error
	Delete(ctx context.Context, id uint) error
}
