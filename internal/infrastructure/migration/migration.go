package migration

import (
	"fmt"

	"gorm.io/gorm"

	"beyazmasa/internal/infrastructure/persistence/models"
	"beyazmasa/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CredentialModel{},
		&models.ProfileModel{},
		&models.TicketModel{},
		&models.AuditLogModel{},
		&models.EventModel{},
		&models.NoteModel{},
	}
}

// Run applies the schema for all registered models.
func Run(db *gorm.DB) error {
	targets := AutoMigrateModels()
	logger.Info("starting database migration", "models_count", len(targets))

	if err := db.AutoMigrate(targets...); err != nil {
		logger.Error("migration failed", "error", err)
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
