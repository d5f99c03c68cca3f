package repository

import (
	"context"

	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/gorm"
)

// QuizWithCount is a quiz row plus the number of live questions it holds.
type QuizWithCount struct {
	model.Quiz
	QuestionCount int
}

type QuizRepository interface {
	WithTx(tx *gorm.DB) QuizRepository
	Create(ctx context.Context, quiz *model.Quiz) error
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error)
	FindAllWithQuestionCount(ctx context.Context, chapterID *uint) ([]QuizWithCount, error)
	Update(ctx context.Context, quiz *model.Quiz) error
	Delete(ctx context.Context, id uint) error
	CountQuestions(ctx context.Context, id uint) (int64, error)
	CountScores(ctx context.Context, id uint) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) WithTx(tx *gorm.DB) QuizRepository {
	return &quizRepository{db: tx}
}

func (r *quizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, notFound(err, "quiz", id)
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, notFound(err, "quiz", id)
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithQuestionCount(ctx context.Context, chapterID *uint) ([]QuizWithCount, error) {
	var results []QuizWithCount
	q := r.db.WithContext(ctx).Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) AS question_count").
		Where("quizzes.deleted_at IS NULL")
	if chapterID != nil {
		q = q.Where("quizzes.chapter_id = ?", *chapterID)
	}
	err := q.Order("quizzes.id ASC").Scan(&results).Error
	return results, err
}

func (r *quizRepository) Update(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Omit("Questions", "Scores", "Chapter").Save(quiz).Error
}

func (r *quizRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Quiz{}, id).Error
}

func (r *quizRepository) CountQuestions(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("quiz_id = ?", id).Count(&count).Error
	return count, err
}

func (r *quizRepository) CountScores(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Score{}).Where("quiz_id = ?", id).Count(&count).Error
	return count, err
}

func (r *quizRepository) Search(ctx context.Context, term string, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	like := likePattern(term)
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(remarks) LIKE ? ESCAPE '\'`, like, like).
		Order("id ASC").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}
