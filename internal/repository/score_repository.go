package repository

import (
	"context"

	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	WithTx(tx *gorm.DB) ScoreRepository
	Create(ctx context.Context, score *model.Score) error
	FindAllByUser(ctx context.Context, userID uint) ([]model.Score, error)
	FindAllByQuiz(ctx context.Context, quizID uint) ([]model.Score, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) WithTx(tx *gorm.DB) ScoreRepository {
	return &scoreRepository{db: tx}
}

func (r *scoreRepository) Create(ctx context.Context, score *model.Score) error {
	return r.db.WithContext(ctx).Create(score).Error
}

// FindAllByUser returns the user's history newest first, with the quiz
// preloaded when it still exists.
func (r *scoreRepository) FindAllByUser(ctx context.Context, userID uint) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.WithContext(ctx).
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("time_stamp_of_attempt DESC, id DESC").
		Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) FindAllByQuiz(ctx context.Context, quizID uint) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("quiz_id = ?", quizID).
		Order("total_scored DESC, time_stamp_of_attempt ASC").
		Find(&scores).Error
	return scores, err
}
