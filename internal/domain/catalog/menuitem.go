// Package catalog holds the menu: proteins a plan can be built around and
// the optional addons attachable to it.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"thali/internal/shared/biztime"
)

// MenuItem is a catalog protein. The display name doubles as the natural
// key an order references; the price is captured into the order at creation
// so later menu edits never reprice existing plans.
type MenuItem struct {
	id            uint
	name          string
	price         int
	proteinAmount int
	calories      int
	available     bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewMenuItem creates a menu item. Names are stored upper-cased since
// orders match them exactly.
func NewMenuItem(name string, price, proteinAmount, calories int) (*MenuItem, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("menu item name is required")
	}
	if price <= 0 {
		return nil, fmt.Errorf("menu item price must be positive")
	}
	if proteinAmount < 0 || calories < 0 {
		return nil, fmt.Errorf("nutrition values cannot be negative")
	}

	now := biztime.NowUTC()
	return &MenuItem{
		name:          name,
		price:         price,
		proteinAmount: proteinAmount,
		calories:      calories,
		available:     true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructMenuItem rebuilds a menu item from persistence.
func ReconstructMenuItem(id uint, name string, price, proteinAmount, calories int, available bool, createdAt, updatedAt time.Time) (*MenuItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("menu item ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("menu item name is required")
	}
	return &MenuItem{
		id:            id,
		name:          name,
		price:         price,
		proteinAmount: proteinAmount,
		calories:      calories,
		available:     available,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (m *MenuItem) ID() uint             { return m.id }
func (m *MenuItem) Name() string         { return m.name }
func (m *MenuItem) Price() int           { return m.price }
func (m *MenuItem) ProteinAmount() int   { return m.proteinAmount }
func (m *MenuItem) Calories() int        { return m.calories }
func (m *MenuItem) Available() bool      { return m.available }
func (m *MenuItem) CreatedAt() time.Time { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (m *MenuItem) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("menu item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("menu item ID cannot be zero")
	}
	m.id = id
	return nil
}

// UpdatePricing changes the catalog price going forward. Existing orders
// keep their captured price.
func (m *MenuItem) UpdatePricing(price int) error {
	if price <= 0 {
		return fmt.Errorf("menu item price must be positive")
	}
	m.price = price
	m.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateNutrition updates the displayed nutrition facts.
func (m *MenuItem) UpdateNutrition(proteinAmount, calories int) error {
	if proteinAmount < 0 || calories < 0 {
		return fmt.Errorf("nutrition values cannot be negative")
	}
	m.proteinAmount = proteinAmount
	m.calories = calories
	m.updatedAt = biztime.NowUTC()
	return nil
}

// SetAvailable toggles whether new orders may reference this item.
func (m *MenuItem) SetAvailable(available bool) {
	if m.available == available {
		return
	}
	m.available = available
	m.updatedAt = biztime.NowUTC()
}
