package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options tune the Postgres pool and GORM logging. Zero values fall back to
// the defaults below.
type Options struct {
	Production      bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 50
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = time.Hour
	}
	if o.SlowThreshold == 0 {
		o.SlowThreshold = 500 * time.Millisecond
	}
	return o
}

// NewGormDBFromDSN opens Postgres with constraint errors translated to
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func NewGormDBFromDSN(dsn string, isProd bool) (*gorm.DB, error) {
	return Open(dsn, Options{Production: isProd})
}

func Open(dsn string, opts Options) (*gorm.DB, error) {
	opts = opts.withDefaults()

	level := gormlogger.Info
	if opts.Production {
		level = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             opts.SlowThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  !opts.Production,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	return db, nil
}
