package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("LOADING_DELAY_MS", "")
	t.Setenv("MOCK_DELAY_MS", "")
	t.Setenv("SESSION_TOKEN_MINUTES", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.UsesMySQL())
	assert.Equal(t, "token", cfg.Session.TokenKey)
	assert.Equal(t, "/login", cfg.Session.LoginPath)
	assert.Equal(t, 500*time.Millisecond, cfg.Dashboard.LoadingDelay)
	assert.Equal(t, time.Second, cfg.Dashboard.MockDelay)
	assert.Equal(t, "@every 5m", cfg.Dashboard.RefreshCron)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
	assert.Equal(t, 480, cfg.JWT.TokenMins)
	assert.Equal(t, PoolConfig{MaxIdleConns: 5, MaxOpenConns: 20, ConnMaxLifetime: 30 * time.Minute}, cfg.Database.Pool)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQuery)
	assert.Same(t, cfg, AppConfig)
}

func TestLoad_ProdPrefixes(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DATA_SOURCE", "MySQL")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_NAME", "coop_prod")
	t.Setenv("PROD_JWT_SECRET", "s3cret")
	t.Setenv("SESSION_LOGIN_PATH", "/ingreso")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.UsesMySQL())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "coop_prod", cfg.Database.DBName)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "/ingreso", cfg.Session.LoginPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("APP_MODE", "dev")
	t.Setenv("DATA_SOURCE", "postgres")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DATA_SOURCE", "mock")
	t.Setenv("LOADING_DELAY_MS", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_InvalidIntegers(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"SESSION_TOKEN_MINUTES", "0"},
		{"SESSION_TOKEN_MINUTES", "abc"},
		{"DB_MAX_OPEN_CONNS", "-3"},
		{"DB_SLOW_QUERY_MS", "fast"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv("APP_MODE", "dev")
			t.Setenv("DATA_SOURCE", "mock")
			t.Setenv(tc.key, tc.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoad_PoolFromEnv(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DATA_SOURCE", "mock")
	t.Setenv("SESSION_TOKEN_MINUTES", "60")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.TokenMins)
	assert.Equal(t, 7, cfg.Database.Pool.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.Pool.MaxIdleConns)
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{Host: "h", Port: "3306", User: "u", Password: "p", DBName: "d"})
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestHealthCheck_NoDatabase(t *testing.T) {
	DB = nil
	assert.ErrorIs(t, HealthCheck(), ErrDatabaseNotInitialized)
	assert.NoError(t, CloseDatabase())
}

func TestSetupLogger(t *testing.T) {
	l := SetupLogger(&Config{AppMode: "dev", LogLevel: "warn"})
	assert.Equal(t, "warning", l.GetLevel().String())

	l = SetupLogger(&Config{AppMode: "prod", LogLevel: "nonsense"})
	assert.Equal(t, "info", l.GetLevel().String())
}
