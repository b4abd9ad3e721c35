package main

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// setupDatabase opens the postgres connection and migrates the schema.
// TranslateError lets repositories detect unique violations as
// gorm.ErrDuplicatedKey instead of matching driver error codes.
func setupDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "garage"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&entity.CustomerIdentifier{},
		&entity.CustomerInfo{},
		&entity.Employee{},
		&entity.CustomerVehicle{},
		&entity.CommonService{},
		&entity.Order{},
		&entity.OrderInfo{},
		&entity.OrderStatusEntry{},
		&entity.OrderServiceItem{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
