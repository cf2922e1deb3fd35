package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vpnkmr17/Order-Microservice/configs"
	"github.com/vpnkmr17/Order-Microservice/internal/models"
)

// Local fallback when DATABASE_URL is not set.
const sqliteFile = "orders.db"

func Connect(cfg *config.Config) (*gorm.DB, error) {

	var dialector gorm.Dialector

	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(sqliteFile + "?_foreign_keys=on")
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return nil, err
	}

	if err := conn.AutoMigrate(&models.Order{}, &models.Product{}); err != nil {
		return nil, err
	}

	return conn, nil
}
