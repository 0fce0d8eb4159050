package config

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDatabaseNotInitialized is returned by HealthCheck in mock mode
var ErrDatabaseNotInitialized = errors.New("database not initialized")

// DB is the global database instance
var DB *gorm.DB

// ConnectDatabase opens the MySQL read model and makes it the global DB
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := OpenDatabase(mysql.Open(buildDSN(cfg.Database)), cfg.Database, cfg.IsDev())
	if err != nil {
		return nil, err
	}

	DB = db

	Logger().WithFields(map[string]interface{}{
		"host":      cfg.Database.Host,
		"port":      cfg.Database.Port,
		"db":        cfg.Database.DBName,
		"max_open":  cfg.Database.Pool.MaxOpenConns,
		"max_idle":  cfg.Database.Pool.MaxIdleConns,
		"data_mode": cfg.DataSource,
	}).Info("✅ Database connected successfully")

	return db, nil
}

// OpenDatabase opens any gorm dialector with the pool and logging settings
// of d. verbose logs every statement, otherwise only slow queries and errors.
func OpenDatabase(dialector gorm.Dialector, d DatabaseConfig, verbose bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger(d, verbose),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if d.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(d.Pool.MaxIdleConns)
	}
	if d.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(d.Pool.MaxOpenConns)
	}
	if d.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(d.Pool.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// gormLogger writes gorm's SQL log through the process logrus logger
func gormLogger(d DatabaseConfig, verbose bool) logger.Interface {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	return logger.New(Logger(), logger.Config{
		SlowThreshold:             d.SlowQuery,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// buildDSN returns the MySQL connection string
func buildDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.DBName)
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// HealthCheck pings the global DB
func HealthCheck() error {
	if DB == nil {
		return ErrDatabaseNotInitialized
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}
