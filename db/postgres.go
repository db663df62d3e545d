// db/postgres.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edgegate-io/tunnelgate/config"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

var Postgres *gorm.DB

func InitPostgres() error {
	dsn := config.GetString("postgres.dsn")
	logger.Info("Connecting to Postgres")

	var err error
	Postgres, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := Postgres.DB()
	if err != nil {
		return fmt.Errorf("failed to access Postgres connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	// Ensure the subscribers table exists
	if err := Postgres.AutoMigrate(&model.Subscriber{}); err != nil {
		return fmt.Errorf("failed to migrate subscribers table: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if Postgres != nil {
		sqlDB, err := Postgres.DB()
		if err != nil {
			logger.Error("Error accessing Postgres connection pool", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing Postgres connection", zap.Error(err))
		} else {
			logger.Info("Postgres connection closed successfully")
		}
	}
}
