// picks the GORM driver by DBDriver and the naming strategy by NamingStrategy.
// No repository/service code changes needed when you change either.

package config

import (
	"fmt"
	"log"

	"github.com/Reactman/wakanda/auditing"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/naming"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// Dialector returns the gorm dialector for cfg.DBDriver.
func Dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN), nil
	case "sqlite":
		// SQLite only needs a file path; the file is created if missing.
		return sqlite.Open(cfg.SQLitePath), nil
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, fmt.Errorf("sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN), nil
	}
	return nil, fmt.Errorf("unknown DBDriver: %s", cfg.DBDriver)
}

// GormConfig builds the gorm settings: Warn-level logger, translated driver
// errors and the configured naming strategy. An unknown strategy is a *core.ConfigurationError.
func GormConfig(cfg *Config) (*gorm.Config, error) {
	namer, err := naming.New(cfg.NamingStrategy, cfg.TablePattern)
	if err != nil {
		return nil, err
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		NamingStrategy: namer,
		// unique-key violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}, nil
}

// InitDB opens the database, installs the audit callbacks for auditor and
// migrates the models. Any failure is fatal.
func InitDB(cfg *Config, auditor auditing.AuditorAware) *gorm.DB {
	dial, err := Dialector(cfg)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	gormCfg, err := GormConfig(cfg)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}

	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}
	if err := Prepare(db, auditor); err != nil {
		log.Fatalf("[db] %v", err)
	}
	return db
}

// Prepare registers the audit callbacks and auto-migrates every entity.
// A table name the naming strategy cannot resolve panics inside gorm; it is
// returned here as an error.
func Prepare(db *gorm.DB, auditor auditing.AuditorAware) (err error) {
	if err := auditing.RegisterCallbacks(db, auditor); err != nil {
		return fmt.Errorf("audit callbacks: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("automigrate: %w", e)
				return
			}
			panic(r)
		}
	}()
	if err := db.AutoMigrate(&models.User{}, &models.CustomerOrder{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
