package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/config"
	"github.com/nailsdg/salon-api/internal/models"
)

func NewDB(cfg *config.Config, logger *zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Story{},
		&models.AuditLog{},
		&models.AppVersion{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate")
	}

	// At most one non-cancelled booking per slot. The index is the
	// authoritative guard; the application-level existence check only
	// produces a friendlier error in the common case.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_active_slot
        ON bookings (date)
        WHERE status <> 'CANCELLED'
    `)

	seedAppVersion(db)

	return db
}

func seedAppVersion(db *gorm.DB) {
	var count int64
	db.Model(&models.AppVersion{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&models.AppVersion{
		Version:     "1.0.0",
		ForceUpdate: false,
		Notes:       "Initial release.",
	})
}
