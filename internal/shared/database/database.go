package database

import (
	"database/sql"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres" // pgx
	DriverPQ       = "pq"       // lib/pq
	DriverSQLite   = "sqlite"
)

// DB wraps both GORM and sql.DB
type DB struct {
	*sql.DB
	GORM *gorm.DB
}

type Options struct {
	Driver  string
	DSN     string
	Verbose bool // log every SQL statement
}

// NewDB opens the database or exits the process
func NewDB(opts Options) *DB {
	db, err := Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("driver", opts.Driver).Msg("❌ Failed to open database")
	}
	return db
}

// Open creates a GORM connection for the configured driver and verifies it with a ping
func Open(opts Options) (*DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log.Logger, opts.Verbose),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if opts.Driver == DriverSQLite {
		// a single connection keeps in-memory databases and write transactions consistent
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", opts.Driver).Msg("✅ Database connected (GORM)!")
	return &DB{
		DB:   sqlDB,
		GORM: gormDB,
	}, nil
}

// newGormLogger writes SQL logs to w. Lookups that find nothing are expected
// (customer resolution, GetByID misses) and are not logged.
func newGormLogger(w io.Writer, verbose bool) logger.Interface {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	return logger.New(stdlog.New(w, "", 0), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverPQ:
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres, pq or sqlite)", driver)
	}
}

func (db *DB) Close() error {
	log.Info().Msg("🔌 Closing database connection...")
	return db.DB.Close()
}
