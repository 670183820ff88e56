// Package sqlite registers the cryptomath SQL functions, aggregates and
// metadata tables with SQLite connections opened through mattn/go-sqlite3.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/cryptomath/pkg/service/calc"
	"github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by Register.
const DriverName = "sqlite3_cryptomath"

var registerOnce sync.Once

// Register makes DriverName available to sql.Open, bound to svc. Only the
// first call has an effect. A nil svc uses the built-in registry.
func Register(svc *calc.Service) {
	registerOnce.Do(func() {
		sql.Register(DriverName, NewDriver(svc))
	})
}

// NewDriver returns a SQLite driver whose connections carry the cryptomath
// extension.
func NewDriver(svc *calc.Service) *sqlite3.SQLiteDriver {
	if svc == nil {
		svc = calc.New(nil, nil)
	}
	return &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return Extend(conn, svc)
		},
	}
}

// Extend installs the functions, aggregates and metadata tables on conn.
func Extend(conn *sqlite3.SQLiteConn, svc *calc.Service) error {
	b := &binding{svc: svc}
	if err := b.registerFunctions(conn); err != nil {
		return fmt.Errorf("failed to register crypto functions: %w", err)
	}
	if err := b.registerAggregates(conn); err != nil {
		return fmt.Errorf("failed to register crypto aggregates: %w", err)
	}
	if err := registerMetadata(conn, svc.Registry()); err != nil {
		return fmt.Errorf("failed to register crypto metadata tables: %w", err)
	}
	slog.Default().Debug("sqlite connection extended", "driver", DriverName)
	return nil
}

type connector struct {
	drv *sqlite3.SQLiteDriver
	dsn string
}

func (c connector) Connect(context.Context) (driver.Conn, error) {
	return c.drv.Open(c.dsn)
}

func (c connector) Driver() driver.Driver {
	return c.drv
}

// OpenDB opens dsn with the extension bound to svc, without touching the
// global driver registry.
func OpenDB(svc *calc.Service, dsn string) *sql.DB {
	return sql.OpenDB(connector{drv: NewDriver(svc), dsn: dsn})
}

// Open opens dsn through the registered DriverName.
func Open(dsn string) (*sql.DB, error) {
	Register(nil)
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}
