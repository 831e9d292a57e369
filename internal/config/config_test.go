package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CHARITY_DB_HOST", "localhost")
	t.Setenv("CHARITY_DB_USER", "charity_admin")
	t.Setenv("CHARITY_DB_PASSWORD", "secret")
	t.Setenv("CHARITY_DB_NAME", "charity_db")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "./client", cfg.ClientDir)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHARITY_DB_PORT", "5433")
	t.Setenv("CHARITY_HTTP_PORT", "8080")
	t.Setenv("CHARITY_CLIENT_DIR", "/srv/client")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5433, cfg.DBPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "/srv/client", cfg.ClientDir)
}

func TestDBURL_EscapesCredentials(t *testing.T) {
	cfg := Config{
		DBHost:     "db.internal",
		DBPort:     5432,
		DBUser:     "charity_admin",
		DBPassword: "p@ss/word",
		DBName:     "charity_db",
	}

	url := cfg.DBURL()
	assert.Contains(t, url, "p%40ss%2Fword")
	assert.Contains(t, url, "db.internal:5432/charity_db")
	assert.Contains(t, url, "pool_max_conns=10")
}
