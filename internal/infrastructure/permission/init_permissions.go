package permission

import (
	"fmt"

	"thali/internal/shared/logger"
)

// InitDefaultPolicies seeds the role policies for the three account roles.
// Idempotent: AddPolicy is a no-op for rules that already exist.
func InitDefaultPolicies(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin: full catalog and operational control
		{"admin", "menu_item", "create"},
		{"admin", "menu_item", "read"},
		{"admin", "menu_item", "update"},
		{"admin", "menu_item", "delete"},
		{"admin", "add_on", "create"},
		{"admin", "add_on", "read"},
		{"admin", "add_on", "update"},
		{"admin", "add_on", "delete"},
		{"admin", "order", "read"},
		{"admin", "subscription", "read"},
		{"admin", "subscription", "cancel"},
		{"admin", "delivery_log", "read"},
		{"admin", "delivery_log", "assign"},
		{"admin", "delivery_log", "mark_ready"},
		{"admin", "notification", "read"},
		{"admin", "setting", "read"},
		{"admin", "setting", "update"},

		// Customers: order, manage their own subscription, read catalog
		{"customer", "menu_item", "read"},
		{"customer", "add_on", "read"},
		{"customer", "order", "create"},
		{"customer", "order", "read"},
		{"customer", "subscription", "read"},
		{"customer", "subscription", "toggle"},
		{"customer", "subscription", "cancel"},
		{"customer", "delivery_log", "read"},
		{"customer", "notification", "read"},

		// Delivery agents: progress their assigned route
		{"delivery", "delivery_log", "read"},
		{"delivery", "delivery_log", "start"},
		{"delivery", "delivery_log", "confirm"},
		{"delivery", "notification", "read"},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("default permission policies initialized")
	return nil
}
