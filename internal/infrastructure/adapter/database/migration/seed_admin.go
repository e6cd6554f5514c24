package migration

import (
	"errors"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedAdmin inserts the admin credentials if no record with that user exists.
// Called at startup when the configuration carries admin settings.
func (m *MigrationManager) SeedAdmin(user, password string) error {
	if user == "" || password == "" {
		m.logger.Debug("No admin credentials configured, skipping seed", nil)
		return nil
	}

	var existing model.Admin
	err := m.db.Where("\"user\" = ?", user).First(&existing).Error
	if err == nil {
		m.logger.Debug("Admin already seeded", map[string]any{"user": user})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := model.Admin{
		ID:       uuid.NewString(),
		User:     user,
		Password: password,
	}

	if err := m.db.Create(&admin).Error; err != nil {
		m.logger.Error("Failed to seed admin", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Seeded admin credentials", map[string]any{"user": user})
	return nil
}
