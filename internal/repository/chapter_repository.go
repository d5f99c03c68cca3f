package repository

import (
	"context"

	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	WithTx(tx *gorm.DB) ChapterRepository
	Create(ctx context.Context, chapter *model.Chapter) error
	FindByID(ctx context.Context, id uint) (*model.Chapter, error)
	FindAll(ctx context.Context, subjectID *uint) ([]model.Chapter, error)
	Update(ctx context.Context, chapter *model.Chapter) error
	Delete(ctx context.Context, id uint) error
	CountQuizzes(ctx context.Context, id uint) (int64, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) WithTx(tx *gorm.DB) ChapterRepository {
	return &chapterRepository{db: tx}
}

func (r *chapterRepository) Create(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

func (r *chapterRepository) FindByID(ctx context.Context, id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.WithContext(ctx).First(&chapter, id).Error; err != nil {
		return nil, notFound(err, "chapter", id)
	}
	return &chapter, nil
}

func (r *chapterRepository) FindAll(ctx context.Context, subjectID *uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	q := r.db.WithContext(ctx)
	if subjectID != nil {
		q = q.Where("subject_id = ?", *subjectID)
	}
	err := q.Order("id ASC").Find(&chapters).Error
	return chapters, err
}

func (r *chapterRepository) Update(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Save(chapter).Error
}

func (r *chapterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Chapter{}, id).Error
}

func (r *chapterRepository) CountQuizzes(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Quiz{}).Where("chapter_id = ?", id).Count(&count).Error
	return count, err
}
