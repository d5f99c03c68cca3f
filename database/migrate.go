package database

import (
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const subjectNameIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_subjects_name_live ON subjects (LOWER(name)) WHERE deleted_at IS NULL`

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Score{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	// Live subject names are unique regardless of case; soft-deleted rows free the name.
	if err := db.Exec(subjectNameIndex).Error; err != nil {
		log.Error().Err(err).Msg("Creating subject name index failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
