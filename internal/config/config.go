package config

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

// Config contains runtime configuration required by the service.
// All values are read from CHARITY_* environment variables so that
// database credentials never live in the source tree.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort  int    `envconfig:"HTTP_PORT" default:"3000"`
	ClientDir string `envconfig:"CLIENT_DIR" default:"./client"`
}

// Load reads the CHARITY_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("CHARITY", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DBURL assembles the pgx connection string. The pool is capped at 10
// connections; waiters queue on the pool rather than failing.
func (c Config) DBURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&pool_max_conns=10",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
