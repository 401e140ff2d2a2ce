package migration

import (
	"fmt"

	"gorm.io/gorm"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/infrastructure/persistence/models"
	"tripwise/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema straight from the struct
// definitions. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.DayPlaceModel{},
		&models.ScheduleModel{},
		&models.GroupPlanModel{},
		&catalog.Province{},
		&catalog.City{},
		&catalog.Hashtag{},
		&catalog.Activity{},
		&catalog.Category{},
		&catalog.Reaction{},
	}
}
