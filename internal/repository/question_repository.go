package repository

import (
	"context"
	"errors"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByQuizAndID(ctx context.Context, quizID, id uint) (*model.Question, error)
	FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, notFound(err, "question", id)
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizAndID(ctx context.Context, quizID, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("question %d not found in quiz %d", id, quizID)
	}
	if err != nil {
		return nil, apperr.Internal(err, "loading question %d", id)
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}
