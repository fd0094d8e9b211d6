// Package app provides first-boot seeding of the catalog and admin account.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// defaultSizes is the size catalog seeded on an empty database.
var defaultSizes = []model.PizzaSize{
	{Name: "small", Centimeters: 25, PriceIncPct: 0},
	{Name: "medium", Centimeters: 30, PriceIncPct: 15},
	{Name: "large", Centimeters: 35, PriceIncPct: 30},
}

// SeedCatalog populates the default pizza sizes and the admin account when
// they are missing. Failures are logged, not fatal: a half-seeded catalog is
// repaired on the next boot.
func SeedCatalog(db *DatabaseComponents, services *ServiceComponents, cfg config.SeedConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cfg.DefaultSizes {
		if err := seedDefaultSizes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default pizza sizes")
		}
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := seedAdminUser(ctx, db, cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to seed admin user")
		}
	}
}

// seedDefaultSizes creates the small/medium/large sizes on an empty catalog.
func seedDefaultSizes(ctx context.Context, db *DatabaseComponents) error {
	existing, err := db.SizeRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, size := range defaultSizes {
		size := size
		if err := db.SizeRepo.Create(ctx, &size); err != nil {
			return err
		}
		log.Info().Str("size", size.Name).Int("centimeters", size.Centimeters).Msg("Created default pizza size")
	}
	return nil
}

// seedAdminUser creates the configured admin account if it does not exist.
func seedAdminUser(ctx context.Context, db *DatabaseComponents, cfg config.SeedConfig) error {
	existing, err := db.UserRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:    cfg.AdminEmail,
		Username: cfg.AdminUsername,
		Password: string(hashedPassword),
		Name:     cfg.AdminName,
		Roles:    []string{model.RoleUser, model.RoleAdmin},
		Active:   true,
	}
	if err := db.UserRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("Created admin user")
	return nil
}
