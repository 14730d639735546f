package infra

import (
	"context"
	"fmt"

	"github.com/ahmadraza103/IMS/internal/model"
	"github.com/ahmadraza103/IMS/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the single process-wide GORM handle over a local SQLite
// file and runs AutoMigrate so the schema exists on every startup. The handle
// lives for the life of the process; Close releases it at shutdown.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Single local writer; SQLite serializes writes internally.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Close releases the underlying sql.DB.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedUsers inserts the two demo accounts (admin/Admin, user/User) with hashed
// passwords. Inserts are ON CONFLICT DO NOTHING, so re-running on an already
// seeded store is a no-op.
func SeedUsers(ctx context.Context, repo repository.UserRepository) error {
	seeds := []struct {
		username, password, role string
	}{
		{"admin", "admin123", model.RoleAdmin},
		{"user", "user123", model.RoleUser},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), 12)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.username, err)
		}
		u := &model.User{
			Username:     s.username,
			PasswordHash: string(hash),
			Role:         s.role,
		}
		if err := repo.Seed(ctx, u); err != nil {
			return fmt.Errorf("seed %s: %w", s.username, err)
		}
	}
	return nil
}
