package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barshopapp/barshop-api/internal/config"
	"github.com/barshopapp/barshop-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.OffDate{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Partial unique indexes AutoMigrate cannot express. These are the
	// authoritative guards behind the check-then-write sequences: at most
	// one scheduled appointment per exact slot, at most one admin user.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_scheduled_slot
        ON appointments (appointment_date_time)
        WHERE status = 'scheduled'
    `)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin
        ON users (role)
        WHERE role = 'admin'
    `)

	return db
}
