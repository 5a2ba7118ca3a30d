package persistence

import (
	"fmt"

	"youtube-lite/infrastructure/configuration"
	"youtube-lite/infrastructure/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewLegacyDb opens the MySQL database behind the legacy read path. The
// legacy surface never hard-fails on this connection: callers degrade to the
// mock catalog when it is missing or unhealthy.
func NewLegacyDb() (*gorm.DB, error) {
	cfg := configuration.C.Database.MySql
	if cfg.Host == "" {
		return nil, fmt.Errorf("mysql host is empty")
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to the legacy MySQL database")
		return nil, err
	}
	return db, nil
}
