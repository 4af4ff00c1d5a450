package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the Postgres connection described by cfg.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey and can be mapped to conflict responses.
func ConnectDatabase(cfg DBConfig) (*gorm.DB, error) {
	var sslMode string
	if cfg.SSLDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.Host, cfg.Username, cfg.Password, cfg.Name, cfg.Port, sslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
}
