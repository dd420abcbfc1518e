// Package setting provides the hot-reloadable business configuration used by
// order creation and the service-area check: database overrides first, then
// the static config file defaults.
package setting

import (
	"context"
	"strconv"

	"thali/internal/domain/geo"
	"thali/internal/domain/setting"
	"thali/internal/infrastructure/cache"
	sharedConfig "thali/internal/shared/config"
	"thali/internal/shared/logger"
)

// Provider implements setting.Provider over the settings repository with a
// redis read-through cache.
type Provider struct {
	repo     setting.Repository
	cache    cache.SettingsCache
	fallback sharedConfig.BusinessConfig
	logger   logger.Interface
}

var _ setting.Provider = (*Provider)(nil)

func NewProvider(
	repo setting.Repository,
	settingsCache cache.SettingsCache,
	fallback sharedConfig.BusinessConfig,
	log logger.Interface,
) *Provider {
	return &Provider{
		repo:     repo,
		cache:    settingsCache,
		fallback: fallback,
		logger:   log,
	}
}

// GetOutletLocation returns the outlet coordinates for service-area checks.
func (p *Provider) GetOutletLocation(ctx context.Context) geo.Point {
	lat := p.floatSetting(ctx, setting.KeyOutletLatitude, p.fallback.Outlet.Latitude)
	lng := p.floatSetting(ctx, setting.KeyOutletLongitude, p.fallback.Outlet.Longitude)
	return geo.Point{Latitude: lat, Longitude: lng}
}

// GetServiceRadiusKm returns the delivery service radius in kilometers.
func (p *Provider) GetServiceRadiusKm(ctx context.Context) float64 {
	return p.floatSetting(ctx, setting.KeyServiceRadiusKm, p.fallback.Outlet.ServiceRadiusKm)
}

// GetDuplicateWindowSeconds returns the duplicate-order guard window.
func (p *Provider) GetDuplicateWindowSeconds(ctx context.Context) int {
	raw, ok := p.rawSetting(ctx, setting.KeyDuplicateWindowS)
	if !ok {
		return p.fallback.Order.DuplicateWindowSeconds
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.logger.Warnw("invalid duplicate window setting, using fallback",
			"value", raw, "error", err)
		return p.fallback.Order.DuplicateWindowSeconds
	}
	return v
}

// floatSetting resolves a float setting through cache then database,
// falling back to the static default on miss or parse failure.
func (p *Provider) floatSetting(ctx context.Context, key string, fallback float64) float64 {
	raw, ok := p.rawSetting(ctx, key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.logger.Warnw("invalid float setting, using fallback",
			"key", key, "value", raw, "error", err)
		return fallback
	}
	return v
}

func (p *Provider) rawSetting(ctx context.Context, key string) (string, bool) {
	if p.cache != nil {
		if value, hit, err := p.cache.Get(ctx, setting.CategoryBusiness, key); err == nil && hit {
			return value, true
		}
	}

	s, err := p.repo.GetByKey(ctx, setting.CategoryBusiness, key)
	if err != nil {
		if err != setting.ErrSettingNotFound {
			p.logger.Warnw("failed to read setting, using fallback", "key", key, "error", err)
		}
		return "", false
	}
	if s == nil || !s.HasValue() {
		return "", false
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, setting.CategoryBusiness, key, s.Value()); err != nil {
			p.logger.Debugw("failed to warm settings cache", "key", key, "error", err)
		}
	}

	return s.Value(), true
}
