package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

const (
	TypePostgres = "postgres"
	TypeSupabase = "supa"
	TypeSQLite   = "sqlite"
)

type Options struct {
	Type         string
	DSN          string
	SQLitePath   string
	ReadReplicas []string
	LogLevel     logger.LogLevel
}

// OptionsFromConfig reads the DB_* keys. For DB_TYPE=supa the DSN is
// assembled from the SUPABASE_DB_* keys.
func OptionsFromConfig(c map[string]string) (Options, error) {
	opts := Options{
		Type:         config.GetString(c, "DB_TYPE", TypeSQLite),
		SQLitePath:   config.GetString(c, "SQLITE_PATH", "portfolio.db"),
		ReadReplicas: config.GetList(c, "DB_READ_REPLICAS", nil),
		LogLevel:     logger.Warn,
	}

	switch opts.Type {
	case TypeSupabase:
		opts.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
	case TypePostgres:
		opts.DSN = config.GetString(c, "DATABASE_URL", "")
		if opts.DSN == "" {
			return opts, errors.New("DATABASE_URL is required when DB_TYPE=postgres")
		}
	case TypeSQLite:
	default:
		return opts, fmt.Errorf("unsupported DB_TYPE %q", opts.Type)
	}
	return opts, nil
}

// Open connects to the configured store. Timestamps are written in UTC and
// driver errors are translated into gorm's sentinel errors.
func Open(opts Options) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         newGormLogger(opts.LogLevel),
	}

	var dialector gorm.Dialector
	switch opts.Type {
	case TypePostgres, TypeSupabase:
		dialector = postgres.New(postgres.Config{
			DSN:                  opts.DSN,
			PreferSimpleProtocol: true,
		})
	case TypeSQLite, "":
		dialector = sqlite.Open(opts.SQLitePath + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", opts.Type)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Type, err)
	}

	if len(opts.ReadReplicas) > 0 && opts.Type != TypeSQLite {
		replicas := make([]gorm.Dialector, 0, len(opts.ReadReplicas))
		for _, dsn := range opts.ReadReplicas {
			replicas = append(replicas, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
		log.Info().Int("replicas", len(replicas)).Msg("read replicas registered")
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table and seeds the singleton profile row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	seed := models.Profile{ID: models.ProfileID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}

type gormLogWriter struct {
	logger zerolog.Logger
}

func (w gormLogWriter) Printf(format string, args ...any) {
	w.logger.Warn().Msgf(format, args...)
}

func newGormLogger(level logger.LogLevel) logger.Interface {
	if level == 0 {
		level = logger.Warn
	}
	return logger.New(
		gormLogWriter{logger: log.With().Str("component", "gorm").Logger()},
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
