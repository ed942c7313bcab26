package db

//
// engine.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Engine hold database connection pool and orm handle created on it.
type Engine struct {
	mu sync.RWMutex

	cfg    config.DBConfig
	logSQL bool
	// closed is set by Shutdown; closed engine can't be opened again
	closed bool

	db  *sqlx.DB
	orm *gorm.DB

	queryDuration *prometheus.HistogramVec
}

func NewEngine(cfg config.DBConfig) *Engine {
	return &Engine{cfg: cfg}
}

func NewEngineI(i do.Injector) (*Engine, error) {
	cfg := do.MustInvoke[config.DBConfig](i)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewEngine(cfg), nil
}

// LogSQL enable logging of all executed sql statements. Must be called before Open.
func (e *Engine) LogSQL(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.logSQL = enabled
}

// Open connect to database. Engine can be opened only once; also after Shutdown.
func (e *Engine) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.db != nil || e.closed {
		return ErrEngineOpened
	}

	if err := e.cfg.Validate(); err != nil {
		return err
	}

	connstr, err := prepareConnstr(e.cfg)
	if err != nil {
		return err
	}

	logger := log.Ctx(ctx)
	logger.Info().Str("driver", e.cfg.Driver).Msg("connecting to database")

	db, err := sqlx.Open(sqlDriverName(e.cfg.Driver), connstr)
	if err != nil {
		return aerr.Wrapf(err, "open database failed").WithTag(aerr.InternalError).
			WithMeta("driver", e.cfg.Driver)
	}

	e.configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return aerr.Wrapf(err, "ping database failed").WithTag(aerr.InternalError)
	}

	orm, err := gorm.Open(e.dialector(db), &gorm.Config{
		NamingStrategy:         entity.Namer{},
		Logger:                 newGormLogger(e.logSQL),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = db.Close()

		return aerr.Wrapf(err, "initialize orm failed").WithTag(aerr.InternalError)
	}

	e.db = db
	e.orm = orm

	logger.Debug().Str("dialect", orm.Dialector.Name()).Msg("database engine initialized")

	return nil
}

// DB return sqlx database handle.
func (e *Engine) DB() (*sqlx.DB, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.db == nil {
		return nil, ErrUninitialized
	}

	return e.db, nil
}

// ORM return gorm handle bound to ctx. It is not a transaction.
func (e *Engine) ORM(ctx context.Context) (*gorm.DB, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.orm == nil {
		return nil, ErrUninitialized
	}

	return e.orm.WithContext(ctx), nil
}

// Dialect return name of sql dialect used by orm ("sqlite", "postgres").
func (e *Engine) Dialect() (string, error) {
	orm, err := e.ORM(context.Background())
	if err != nil {
		return "", err
	}

	return orm.Dialector.Name(), nil
}

func (e *Engine) Driver() string {
	return e.cfg.Driver
}

func (e *Engine) HasTable(ctx context.Context, table string) (bool, error) {
	orm, err := e.ORM(ctx)
	if err != nil {
		return false, err
	}

	return orm.Migrator().HasTable(table), nil
}

// CreateTables create tables for models in given order.
func (e *Engine) CreateTables(ctx context.Context, models ...any) error {
	orm, err := e.ORM(ctx)
	if err != nil {
		return err
	}

	migrator := orm.Migrator()

	for _, model := range models {
		if err := migrator.CreateTable(model); err != nil {
			return aerr.ApplyFor(aerr.ErrDatabase, err, "create table failed").
				WithMeta("table", entity.TableName(model))
		}
	}

	return nil
}

// DropTables drop tables for models in reverse order.
func (e *Engine) DropTables(ctx context.Context, models ...any) error {
	orm, err := e.ORM(ctx)
	if err != nil {
		return err
	}

	migrator := orm.Migrator()

	for i := len(models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(models[i]); err != nil {
			return aerr.ApplyFor(aerr.ErrDatabase, err, "drop table failed").
				WithMeta("table", entity.TableName(models[i]))
		}
	}

	return nil
}

func (e *Engine) HealthCheck(ctx context.Context) error {
	db, err := e.DB()
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		return aerr.ApplyFor(aerr.ErrDatabase, err, "ping database failed")
	}

	return nil
}

func (e *Engine) GetConnection(ctx context.Context) (*sqlx.Conn, error) {
	db, err := e.DB()
	if err != nil {
		return nil, err
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		return nil, aerr.ApplyFor(aerr.ErrDatabase, err, "failed open connection")
	}

	return conn, nil
}

func (e *Engine) CloseConnection(ctx context.Context, conn *sqlx.Conn) {
	if e.cfg.IsSqlite() {
		if _, err := conn.ExecContext(ctx, "PRAGMA optimize"); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("run scripts onClose failed")
		}
	}

	if err := conn.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("close connection failed")
	}
}

// RegisterMetrics register database stats collector and optionally histogram
// of transactions duration.
func (e *Engine) RegisterMetrics(reg prometheus.Registerer, queryTime bool) error {
	db, err := e.DB()
	if err != nil {
		return err
	}

	var errs []error

	errs = append(errs, reg.Register(newDBStatsCollector(db)))

	if queryTime {
		hist := newQueryDurationHistogram()
		if err := reg.Register(hist); err != nil {
			errs = append(errs, err)
		} else {
			e.mu.Lock()
			e.queryDuration = hist
			e.mu.Unlock()
		}
	}

	if err := errors.Join(errs...); err != nil {
		return aerr.Wrapf(err, "register database metrics failed").WithTag(aerr.InternalError)
	}

	return nil
}

// Shutdown close database. Called by samber/do.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.db == nil {
		return nil
	}

	if e.cfg.IsSqlite() {
		if _, err := e.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("optimize database failed")
		}
	}

	err := e.db.Close()

	e.db = nil
	e.orm = nil
	e.closed = true

	if err != nil {
		return fmt.Errorf("close db error: %w", err)
	}

	log.Ctx(ctx).Debug().Msg("db closed")

	return nil
}

func (e *Engine) configurePool(db *sqlx.DB) {
	db.SetConnMaxIdleTime(30 * time.Second) //nolint:mnd
	db.SetConnMaxLifetime(60 * time.Second) //nolint:mnd
	db.SetMaxIdleConns(1)
	db.SetMaxOpenConns(10) //nolint:mnd

	// every connection to :memory: open new, empty database
	if e.cfg.IsSqlite() && e.cfg.Connstr == memoryDB {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	}
}

func (e *Engine) dialector(db *sqlx.DB) gorm.Dialector { //nolint:ireturn
	if e.cfg.Driver == config.DriverPostgres {
		return postgres.New(postgres.Config{Conn: db.DB})
	}

	return &sqlite.Dialector{DriverName: e.cfg.Driver, Conn: db.DB}
}

func sqlDriverName(driver string) string {
	if driver == config.DriverPostgres {
		return "pgx"
	}

	return driver
}
