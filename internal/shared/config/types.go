// Package config defines the configuration types shared across layers.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AuthConfig struct {
	JWT    JWTConfig      `mapstructure:"jwt"`
	Bcrypt PasswordConfig `mapstructure:"password"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// OutletConfig holds fallback values for the delivery outlet when the
// settings table has no override.
type OutletConfig struct {
	Latitude        float64 `mapstructure:"latitude"`
	Longitude       float64 `mapstructure:"longitude"`
	ServiceRadiusKm float64 `mapstructure:"service_radius_km"`
}

// OrderConfig tunes the order creation workflow.
type OrderConfig struct {
	// DuplicateWindowSeconds is the lookback used by the double-submit guard.
	DuplicateWindowSeconds int `mapstructure:"duplicate_window_seconds"`
	RateLimitPerMinute     int `mapstructure:"rate_limit_per_minute"`
}

// BusinessConfig groups tunables of the meal-plan business rules.
type BusinessConfig struct {
	Timezone string       `mapstructure:"timezone"`
	Outlet   OutletConfig `mapstructure:"outlet"`
	Order    OrderConfig  `mapstructure:"order"`
}
