package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources the API can serve from
const (
	DataSourceMock  = "mock"
	DataSourceMySQL = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	LogLevel   string
	DataSource string
	Database   DatabaseConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Session    SessionConfig
	Dashboard  DashboardConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Pool     PoolConfig
	// SlowQuery is the threshold above which gorm logs a query as slow
	SlowQuery time.Duration
}

// PoolConfig sizes the sql.DB connection pool
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds the signing settings for the session token
type JWTConfig struct {
	Secret    string
	TokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// SessionConfig holds the session gate settings
type SessionConfig struct {
	TokenKey  string
	LoginPath string
}

// DashboardConfig holds loading/refresh timings
type DashboardConfig struct {
	LoadingDelay time.Duration
	MockDelay    time.Duration
	RefreshCron  string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		Logger().Warn("⚠️ .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	dataSource := strings.ToLower(strings.TrimSpace(getEnv("DATA_SOURCE", DataSourceMock)))
	if dataSource != DataSourceMock && dataSource != DataSourceMySQL {
		return nil, fmt.Errorf("invalid DATA_SOURCE: '%s' (must be 'mock' or 'mysql')", dataSource)
	}

	dashboard, err := loadDashboardConfig()
	if err != nil {
		return nil, err
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:    appMode,
		Port:       getEnv("PORT", "3000"),
		LogLevel:   getEnv("LOG_LEVEL", defaultLogLevel(appMode)),
		DataSource: dataSource,
		Database:   database,
		JWT:        jwtCfg,
		Cookie:     loadCookieConfig(appMode),
		Session:    loadSessionConfig(),
		Dashboard:  dashboard,
	}

	// Set global config
	AppConfig = config

	Logger().WithField("mode", appMode).WithField("data_source", dataSource).Info("✅ Configuration loaded successfully")
	return config, nil
}

func defaultLogLevel(mode string) string {
	if mode == "prod" {
		return "info"
	}
	return "debug"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := modePrefix(mode)

	maxIdle, err := positiveInt("DB_MAX_IDLE_CONNS", "5")
	if err != nil {
		return DatabaseConfig{}, err
	}
	maxOpen, err := positiveInt("DB_MAX_OPEN_CONNS", "20")
	if err != nil {
		return DatabaseConfig{}, err
	}
	lifetimeMins, err := positiveInt("DB_CONN_MAX_LIFETIME_MINUTES", "30")
	if err != nil {
		return DatabaseConfig{}, err
	}
	slowMs, err := positiveInt("DB_SLOW_QUERY_MS", "200")
	if err != nil {
		return DatabaseConfig{}, err
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "coop_admin"),
		Pool: PoolConfig{
			MaxIdleConns:    maxIdle,
			MaxOpenConns:    maxOpen,
			ConnMaxLifetime: time.Duration(lifetimeMins) * time.Minute,
		},
		SlowQuery: time.Duration(slowMs) * time.Millisecond,
	}, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) (JWTConfig, error) {
	prefix := modePrefix(mode)

	tokenMins, err := positiveInt("SESSION_TOKEN_MINUTES", "480")
	if err != nil {
		return JWTConfig{}, err
	}

	return JWTConfig{
		Secret:    getEnv(prefix+"JWT_SECRET", "default_secret"),
		TokenMins: tokenMins,
	}, nil
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := modePrefix(mode)

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		TokenKey:  getEnv("SESSION_TOKEN_KEY", "token"),
		LoginPath: getEnv("SESSION_LOGIN_PATH", "/login"),
	}
}

func loadDashboardConfig() (DashboardConfig, error) {
	loadingMs, err := strconv.Atoi(getEnv("LOADING_DELAY_MS", "500"))
	if err != nil || loadingMs < 0 {
		return DashboardConfig{}, fmt.Errorf("invalid LOADING_DELAY_MS: '%s'", os.Getenv("LOADING_DELAY_MS"))
	}

	mockMs, err := strconv.Atoi(getEnv("MOCK_DELAY_MS", "1000"))
	if err != nil || mockMs < 0 {
		return DashboardConfig{}, fmt.Errorf("invalid MOCK_DELAY_MS: '%s'", os.Getenv("MOCK_DELAY_MS"))
	}

	return DashboardConfig{
		LoadingDelay: time.Duration(loadingMs) * time.Millisecond,
		MockDelay:    time.Duration(mockMs) * time.Millisecond,
		RefreshCron:  getEnv("DASHBOARD_REFRESH_CRON", "@every 5m"),
	}, nil
}

// positiveInt reads an integer setting that must be at least 1
func positiveInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: '%s' (must be a positive integer)", key, os.Getenv(key))
	}
	return n, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// UsesMySQL reports whether data comes from the database instead of fixtures
func (c *Config) UsesMySQL() bool {
	return c.DataSource == DataSourceMySQL
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://admin.coopahorro.co"
	}
	return origins
}
