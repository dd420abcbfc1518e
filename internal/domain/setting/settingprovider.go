package setting

import (
	"context"

	"thali/internal/domain/geo"
)

// ConfigValue represents a configuration value with its source information.
type ConfigValue struct {
	Value  any
	Source string // "database", "config", or "default"
}

// Provider defines the interface for hot-reloadable business configuration.
// Use cases depend on this interface instead of the concrete
// infrastructure-layer provider, following the dependency inversion principle.
type Provider interface {
	// GetOutletLocation returns the outlet coordinates used for
	// service-area checks. Database values take precedence over the
	// static config file.
	GetOutletLocation(ctx context.Context) geo.Point

	// GetServiceRadiusKm returns the delivery service radius in kilometers.
	GetServiceRadiusKm(ctx context.Context) float64

	// GetDuplicateWindowSeconds returns the duplicate-order guard window.
	GetDuplicateWindowSeconds(ctx context.Context) int
}
