package database

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/config"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pingAttempts = 10

// NewDatabase opens the Supabase/PostgreSQL connection. PreferSimpleProtocol
// keeps it usable behind PgBouncer in transaction pooling mode.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC application_name=eunoia",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: NewGormLogger()})
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "getting sql.DB handle")
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if err := ping(db); err != nil {
		return nil, err
	}
	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Database connected")
	return db, nil
}

// NewGormLogger routes gorm's slow-query and error logs through zerolog.
func NewGormLogger() gormlogger.Interface {
	return gormlogger.New(
		stdlog.New(log.Logger, "", 0),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// ping waits for the database to be ready, sleeping a little longer after each failure.
func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql.DB handle")
	}
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("Database not ready")
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	return errors.Wrap(err, "DB ping timeout")
}

// Migrate creates or updates the tables this service reads and writes.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.BulkAssessment{},
		&model.AssessmentAssignment{},
		&model.Ryff42Submission{},
		&model.Ryff84Submission{},
		&model.CollegeScore{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return errors.Wrap(err, "auto-migrating models")
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
