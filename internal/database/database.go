package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/workbridge/jobboard-backend/internal/config"
	"github.com/workbridge/jobboard-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Smaller pool outside production.
	maxOpen, maxIdle := 10, 5
	if cfg.IsProduction() {
		maxOpen, maxIdle = 50, 25
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "env", cfg.AppEnv, "max_open_conns", maxOpen)
	return nil
}

// Migrate runs AutoMigrate for every model.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.JobSeeker{},
		&models.Employer{},
		&models.Admin{},
		&models.Job{},
		&models.Application{},
		&models.Vacancy{},
		&models.StaffingInquiry{},
		&models.BlogPost{},
		&models.Notification{},
		&models.InvitationCode{},
		&models.RefreshToken{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
