package db

import (
	"fmt"

	"github.com/linskybing/survey-platform/internal/config"
	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/internal/domain/submission"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("Failed to connect to DB", zap.Error(err))
	}
	logger.Log.Info("Database connected", zap.String("host", config.DbHost), zap.String("name", config.DbName))
}

// Migrate creates or updates the forms and responses tables.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&form.Form{},
		&submission.Response{},
	)
}
