package database

import (
	"context"

	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/models"
)

// DefaultPassword is the documented first-login password for the seeded
// administrator account and for new accounts created without an explicit
// password. Only its bcrypt hash is ever stored.
const DefaultPassword = "123456"

func defaultAdmin() (models.User, error) {
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:           "admin-1",
		Username:     models.ReservedAdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		FullName:     "Master Administrator",
		Permissions: models.UserPermissions{
			CanAddInventory: true,
			AccessiblePages: []string{"dashboard", "inventory", "sales", "reports", "users", "settings", "audit-logs"},
		},
	}, nil
}

// Users returns the user collection, seeding the reserved administrator
// account on first read so a fresh install is always reachable.
func Users(ctx context.Context, s Store) ([]models.User, error) {
	var users []models.User
	found, err := s.Read(ctx, KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		admin, err := defaultAdmin()
		if err != nil {
			return nil, err
		}
		users = []models.User{admin}
		if err := s.Write(ctx, KeyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func SaveUsers(ctx context.Context, s Store, users []models.User) error {
	return s.Write(ctx, KeyUsers, users)
}

func Products(ctx context.Context, s Store) ([]models.Product, error) {
	var products []models.Product
	if _, err := s.Read(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func SaveProducts(ctx context.Context, s Store, products []models.Product) error {
	return s.Write(ctx, KeyProducts, products)
}

func Sales(ctx context.Context, s Store) ([]models.Sale, error) {
	var sales []models.Sale
	if _, err := s.Read(ctx, KeySales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func SaveSales(ctx context.Context, s Store, sales []models.Sale) error {
	return s.Write(ctx, KeySales, sales)
}

func AuditLogs(ctx context.Context, s Store) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if _, err := s.Read(ctx, KeyAuditLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func SaveAuditLogs(ctx context.Context, s Store, logs []models.AuditLog) error {
	return s.Write(ctx, KeyAuditLogs, logs)
}

// Config returns the app config, falling back to defaults when the blob
// has never been written.
func Config(ctx context.Context, s Store) (models.AppConfig, error) {
	var cfg models.AppConfig
	found, err := s.Read(ctx, KeyAppConfig, &cfg)
	if err != nil {
		return models.AppConfig{}, err
	}
	if !found {
		return models.DefaultConfig(), nil
	}
	return cfg, nil
}

func SaveConfig(ctx context.Context, s Store, cfg models.AppConfig) error {
	return s.Write(ctx, KeyAppConfig, cfg)
}

// ClearBusinessData empties inventory, sales and audit logs. User accounts
// and configuration survive a reset.
func ClearBusinessData(ctx context.Context, s Store) error {
	if err := s.Write(ctx, KeyProducts, []models.Product{}); err != nil {
		return err
	}
	if err := s.Write(ctx, KeySales, []models.Sale{}); err != nil {
		return err
	}
	return s.Write(ctx, KeyAuditLogs, []models.AuditLog{})
}
