package storage

import (
	"os"
	"sync"

	"collabriq-backend/internal/config"
	"collabriq-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db               *gorm.DB
	once             sync.Once
	registryMu       sync.Mutex
	registeredModels []any
)

// RegisterModels is called from model packages' init functions so the
// schema can be migrated without storage importing feature packages.
func RegisterModels(models ...any) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registeredModels = append(registeredModels, models...)
}

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	cfg := config.GetEnv()

	var dialector gorm.Dialector
	if cfg.IsTesting {
		dialector = sqlite.Open(cfg.DatabaseDsn)
	} else {
		dialector = postgres.Open(cfg.DatabaseDsn)
	}

	gormDb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	registryMu.Lock()
	models := registeredModels
	registryMu.Unlock()

	if err := gormDb.AutoMigrate(models...); err != nil {
		log.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	db = gormDb
}
