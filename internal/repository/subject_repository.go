package repository

import (
	"context"

	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	WithTx(tx *gorm.DB) SubjectRepository
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id uint) (*model.Subject, error)
	FindAll(ctx context.Context) ([]model.Subject, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id uint) error
	CountChapters(ctx context.Context, id uint) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) WithTx(tx *gorm.DB) SubjectRepository {
	return &subjectRepository{db: tx}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, notFound(err, "subject", id)
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).Order("name ASC").Find(&subjects).Error
	return subjects, err
}

// NameTaken checks live subjects only; soft-deleted names may be reused.
func (r *subjectRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Subject{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *subjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subject{}, id).Error
}

func (r *subjectRepository) CountChapters(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Chapter{}).Where("subject_id = ?", id).Count(&count).Error
	return count, err
}

func (r *subjectRepository) Search(ctx context.Context, term string, limit int) ([]model.Subject, error) {
	var subjects []model.Subject
	like := likePattern(term)
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, like, like).
		Order("name ASC").
		Limit(limit).
		Find(&subjects).Error
	return subjects, err
}
