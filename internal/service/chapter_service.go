package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ChapterService interface {
	GetAll(ctx context.Context, subjectID *uint) ([]dto.ChapterResponse, error)
	Get(ctx context.Context, id uint) (*dto.ChapterResponse, error)
	Create(ctx context.Context, req dto.ChapterRequest) (*dto.ChapterResponse, error)
	Update(ctx context.Context, id uint, req dto.ChapterRequest) (*dto.ChapterResponse, error)
	Delete(ctx context.Context, id uint) error
}

type chapterService struct {
	chapterRepo repository.ChapterRepository
	subjectRepo repository.SubjectRepository
	db          *gorm.DB
}

func NewChapterService(chapterRepo repository.ChapterRepository, subjectRepo repository.SubjectRepository, db *gorm.DB) ChapterService {
	return &chapterService{chapterRepo: chapterRepo, subjectRepo: subjectRepo, db: db}
}

func (s *chapterService) GetAll(ctx context.Context, subjectID *uint) ([]dto.ChapterResponse, error) {
	chapters, err := s.chapterRepo.FindAll(ctx, subjectID)
	if err != nil {
		return nil, apperr.Internal(err, "listing chapters")
	}
	resp := make([]dto.ChapterResponse, 0, len(chapters))
	copier.Copy(&resp, &chapters)
	return resp, nil
}

func (s *chapterService) Get(ctx context.Context, id uint) (*dto.ChapterResponse, error) {
	chapter, err := s.chapterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var resp dto.ChapterResponse
	copier.Copy(&resp, chapter)
	return &resp, nil
}

func (s *chapterService) Create(ctx context.Context, req dto.ChapterRequest) (*dto.ChapterResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("chapter name is required")
	}
	chapter := model.Chapter{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		SubjectID:   req.SubjectID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.subjectRepo.WithTx(tx).FindByID(ctx, req.SubjectID); err != nil {
			return err
		}
		if err := s.chapterRepo.WithTx(tx).Create(ctx, &chapter); err != nil {
			return apperr.Internal(err, "creating chapter")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.ChapterResponse
	copier.Copy(&resp, &chapter)
	return &resp, nil
}

func (s *chapterService) Update(ctx context.Context, id uint, req dto.ChapterRequest) (*dto.ChapterResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("chapter name is required")
	}

	var chapter *model.Chapter
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chapters := s.chapterRepo.WithTx(tx)
		var err error
		chapter, err = chapters.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req.SubjectID != chapter.SubjectID {
			if _, err := s.subjectRepo.WithTx(tx).FindByID(ctx, req.SubjectID); err != nil {
				return err
			}
		}
		chapter.Name = name
		chapter.Description = strings.TrimSpace(req.Description)
		chapter.SubjectID = req.SubjectID
		if err := chapters.Update(ctx, chapter); err != nil {
			return apperr.Internal(err, "updating chapter %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.ChapterResponse
	copier.Copy(&resp, chapter)
	return &resp, nil
}

// Delete refuses to remove a chapter that still has quizzes.
func (s *chapterService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chapters := s.chapterRepo.WithTx(tx)
		if _, err := chapters.FindByID(ctx, id); err != nil {
			return err
		}
		quizzes, err := chapters.CountQuizzes(ctx, id)
		if err != nil {
			return apperr.Internal(err, "counting quizzes of chapter %d", id)
		}
		if quizzes > 0 {
			return apperr.InUse("chapter %d still has %d quiz(zes); delete them first", id, quizzes)
		}
		if err := chapters.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "deleting chapter %d", id)
		}
		log.Info().Uint("chapterID", id).Msg("Chapter deleted")
		return nil
	})
}
