package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/config"
	"github.com/mrlokans/bookery/internal/entities"
)

const defaultConnectTimeout = 5 * time.Second

// Database owns the process-wide connection pool. It is built once at startup
// and handed to every repository.
type Database struct {
	DB     *gorm.DB
	Driver config.DatabaseDriver
}

func NewDatabase(cfg config.Database, log zerolog.Logger) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger: NewGormLogger(log),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		db, err = openPostgres(cfg, gormCfg)
	case config.DatabaseDriverSQLite:
		db, err = openSQLite(cfg, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("driver", string(cfg.Driver)).Msg("database connection established")
	return &Database{DB: db, Driver: cfg.Driver}, nil
}

func openPostgres(cfg config.Database, gormCfg *gorm.Config) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = cfg.ConnectTimeout
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	configurePool(sqlDB, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout(cfg))
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
}

func openSQLite(cfg config.Database, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	configurePool(sqlDB, cfg)
	return db, nil
}

func configurePool(sqlDB *sql.DB, cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

func connectTimeout(cfg config.Database) time.Duration {
	if cfg.ConnectTimeout > 0 {
		return cfg.ConnectTimeout
	}
	return defaultConnectTimeout
}

// Migrate creates or updates the four library tables.
func (d *Database) Migrate() error {
	return Migrate(d.DB)
}

// Migrate is exported separately so tests can migrate a bare *gorm.DB.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
		&entities.Costumer{},
		&entities.Rental{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks that the pool can still reach the backend.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
