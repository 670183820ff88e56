// Package initializer wires configuration into the logger, the currency
// registry, the calc service and the SQLite database.
package initializer

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/amirasaad/cryptomath/infra/sqlite"
	"github.com/amirasaad/cryptomath/pkg/config"
	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/amirasaad/cryptomath/pkg/service/calc"
)

// Deps holds everything the front-ends need.
type Deps struct {
	Config   *config.App
	Logger   *slog.Logger
	Registry *currency.Registry
	Calc     *calc.Service
	// Rounding is the division mode used when a request names none.
	Rounding money.Rounding
	DB       *sql.DB
}

// Close releases the database.
func (d *Deps) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// InitializeDependencies builds Deps from cfg. The logger is installed as
// the slog default.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := SetupLogger(cfg.Log)
	return initialize(cfg, logger)
}

func initialize(cfg *config.App, logger *slog.Logger) (*Deps, error) {
	reg, err := LoadRegistry(cfg.Registry, logger)
	if err != nil {
		return nil, err
	}

	rounding := money.Trunc
	if cfg.Calc != nil {
		if rounding, err = money.ParseRounding(cfg.Calc.Rounding); err != nil {
			return nil, fmt.Errorf("invalid CALC_ROUNDING: %w", err)
		}
	}

	var opts []calc.Option
	if cfg.Calc != nil {
		opts = append(opts, calc.WithSumWorkers(cfg.Calc.SumWorkers))
	}
	svc := calc.New(reg, logger, opts...)

	dsn, maxOpen := ":memory:", 1
	if cfg.DB != nil {
		dsn, maxOpen = cfg.DB.DSN, cfg.DB.MaxOpenConns
	}
	db := sqlite.OpenDB(svc, dsn)
	db.SetMaxOpenConns(maxOpen)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Info("Dependencies initialized",
		"currencies", reg.Count(),
		"denominations", len(reg.Denoms()),
		"rounding", rounding,
	)
	return &Deps{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Calc:     svc,
		Rounding: rounding,
		DB:       db,
	}, nil
}

// LoadRegistry returns the registry named by cfg.File, or the built-in one.
func LoadRegistry(cfg *config.Registry, logger *slog.Logger) (*currency.Registry, error) {
	if cfg == nil || cfg.File == "" {
		return currency.Default(), nil
	}
	reg, err := currency.LoadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency registry: %w", err)
	}
	logger.Info("Currency registry loaded", "file", cfg.File, "currencies", reg.Count())
	return reg, nil
}
