package config

import (
	"fmt"
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Addr returns host:port for net.Listen.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[cryptomath]"`
}

// DB configures the SQLite database the SQL functions are installed on.
type DB struct {
	DSN          string `envconfig:"DSN" default:":memory:"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"1"`
}

// Registry selects the currency table. An empty File uses the built-in one.
type Registry struct {
	File string `envconfig:"FILE"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Calc struct {
	Rounding   string `envconfig:"ROUNDING" default:"trunc"`
	SumWorkers int    `envconfig:"SUM_WORKERS" default:"0"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Registry  *Registry  `envconfig:"REGISTRY"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Calc      *Calc      `envconfig:"CALC"`
}
