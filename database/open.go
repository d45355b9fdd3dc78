package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/devfolio-backend/config"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Open connects to the store selected by DB_TYPE: "supa" for the hosted Supabase Postgres, or
// "sqlite" for a local file (SQLITE_PATH) used in development.
func Open(cfg map[string]string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger:      newGormLogger(cfg),
	}

	dbType := config.GetString(cfg, "DB_TYPE", "")
	log.Info().Str("dbType", dbType).Msg("Connecting to database")

	var (
		db  *gorm.DB
		err error
	)
	switch dbType {
	case "supa":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  supabaseDSN(cfg, config.GetString(cfg, "SUPABASE_DB_HOST", "")),
			PreferSimpleProtocol: true,
		}), gormConfig)
		if err != nil {
			return nil, err
		}
		if err := useReplica(db, cfg); err != nil {
			return nil, err
		}
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.GetString(cfg, "SQLITE_PATH", "devfolio.db")), gormConfig)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.NewConfigError("DB_TYPE", fmt.Errorf("unsupported DB_TYPE %q", dbType))
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("error testing database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.GetInt(cfg, "DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(config.GetSeconds(cfg, "DB_CONN_MAX_IDLE_SECONDS", 300))

	return db, nil
}

func supabaseDSN(cfg map[string]string, host string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host,
		config.GetString(cfg, "SUPABASE_DB_USER", ""),
		config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(cfg, "SUPABASE_DB_NAME", "postgres"),
		config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
	)
}

// useReplica routes reads to SUPABASE_DB_REPLICA_HOST when it is set. Writes always go to the
// primary.
func useReplica(db *gorm.DB, cfg map[string]string) error {
	replicaHost := config.GetString(cfg, "SUPABASE_DB_REPLICA_HOST", "")
	if replicaHost == "" {
		return nil
	}
	log.Info().Str("replicaHost", replicaHost).Msg("Routing reads to read replica")
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.New(postgres.Config{
			DSN:                  supabaseDSN(cfg, replicaHost),
			PreferSimpleProtocol: true,
		})},
		Policy:            dbresolver.RandomPolicy{},
		TraceResolverMode: config.GetBool(cfg, "DB_TRACE_RESOLVER", false),
	}))
}

func newGormLogger(cfg map[string]string) logger.Interface {
	level := logger.Warn
	if config.GetBool(cfg, "DB_DEBUG", false) {
		level = logger.Info
	}
	return logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Duration(config.GetInt(cfg, "DB_SLOW_QUERY_MS", 2000)) * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  config.GetString(cfg, "LOG_FORMAT", "") == "console",
		},
	)
}
