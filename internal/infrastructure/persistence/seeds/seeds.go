// Package seeds loads the catalog and default settings from a YAML seed
// file into the database. Seeding is idempotent: existing rows are matched
// on their natural keys and left untouched.
package seeds

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"thali/internal/infrastructure/persistence/models"
	"thali/internal/shared/logger"
)

// SeedFile mirrors the YAML layout of a seed file.
type SeedFile struct {
	MenuItems []MenuItemSeed `yaml:"menu_items"`
	AddOns    []AddOnSeed    `yaml:"add_ons"`
	Settings  []SettingSeed  `yaml:"settings"`
	Users     []UserSeed     `yaml:"users"`
}

type MenuItemSeed struct {
	Name          string `yaml:"name"`
	Price         int    `yaml:"price"`
	ProteinAmount int    `yaml:"protein_amount"`
	Calories      int    `yaml:"calories"`
	Available     *bool  `yaml:"available"`
}

type AddOnSeed struct {
	Name              string `yaml:"name"`
	Price             int    `yaml:"price"`
	AllowSubscription bool   `yaml:"allow_subscription"`
}

type SettingSeed struct {
	Category    string `yaml:"category"`
	Key         string `yaml:"key"`
	Value       string `yaml:"value"`
	ValueType   string `yaml:"value_type"`
	Description string `yaml:"description"`
}

// UserSeed carries a pre-hashed password so seed files never hold
// plaintext credentials.
type UserSeed struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

// Load parses a YAML seed file from disk.
func Load(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Apply writes the seed file contents into the database.
func Apply(db *gorm.DB, file *SeedFile, log logger.Interface) error {
	if err := seedMenuItems(db, file.MenuItems); err != nil {
		return err
	}
	if err := seedAddOns(db, file.AddOns); err != nil {
		return err
	}
	if err := seedSettings(db, file.Settings); err != nil {
		return err
	}
	if err := seedUsers(db, file.Users); err != nil {
		return err
	}

	log.Infow("seed data applied",
		"menu_items", len(file.MenuItems),
		"add_ons", len(file.AddOns),
		"settings", len(file.Settings),
		"users", len(file.Users))
	return nil
}

func seedMenuItems(db *gorm.DB, items []MenuItemSeed) error {
	for _, seed := range items {
		available := true
		if seed.Available != nil {
			available = *seed.Available
		}
		row := models.MenuItemModel{
			Name:          strings.ToUpper(strings.TrimSpace(seed.Name)),
			Price:         seed.Price,
			ProteinAmount: seed.ProteinAmount,
			Calories:      seed.Calories,
			Available:     available,
		}
		if err := db.FirstOrCreate(&row, models.MenuItemModel{Name: row.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", row.Name, err)
		}
	}
	return nil
}

func seedAddOns(db *gorm.DB, addons []AddOnSeed) error {
	for _, seed := range addons {
		row := models.AddOnModel{
			Name:              strings.ToUpper(strings.TrimSpace(seed.Name)),
			Price:             seed.Price,
			AllowSubscription: seed.AllowSubscription,
		}
		if err := db.FirstOrCreate(&row, models.AddOnModel{Name: row.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed addon %q: %w", row.Name, err)
		}
	}
	return nil
}

func seedSettings(db *gorm.DB, settings []SettingSeed) error {
	for _, seed := range settings {
		row := models.SystemSettingModel{
			Category:    seed.Category,
			SettingKey:  seed.Key,
			Value:       seed.Value,
			ValueType:   seed.ValueType,
			Description: seed.Description,
		}
		if err := db.FirstOrCreate(&row, models.SystemSettingModel{
			Category:   seed.Category,
			SettingKey: seed.Key,
		}).Error; err != nil {
			return fmt.Errorf("failed to seed setting %s/%s: %w", seed.Category, seed.Key, err)
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, users []UserSeed) error {
	for _, seed := range users {
		row := models.UserModel{
			Name:         seed.Name,
			Email:        strings.ToLower(strings.TrimSpace(seed.Email)),
			PasswordHash: seed.PasswordHash,
			Role:         seed.Role,
		}
		if err := db.FirstOrCreate(&row, models.UserModel{Email: row.Email}).Error; err != nil {
			return fmt.Errorf("failed to seed user %q: %w", row.Email, err)
		}
	}
	return nil
}
