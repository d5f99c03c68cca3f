package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubjectService interface {
	GetAll(ctx context.Context) ([]dto.SubjectResponse, error)
	Get(ctx context.Context, id uint) (*dto.SubjectResponse, error)
	Create(ctx context.Context, req dto.SubjectRequest) (*dto.SubjectResponse, error)
	Update(ctx context.Context, id uint, req dto.SubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id uint) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
	db          *gorm.DB
}

func NewSubjectService(subjectRepo repository.SubjectRepository, db *gorm.DB) SubjectService {
	return &subjectService{subjectRepo: subjectRepo, db: db}
}

func (s *subjectService) GetAll(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjectRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "listing subjects")
	}
	resp := make([]dto.SubjectResponse, 0, len(subjects))
	copier.Copy(&resp, &subjects)
	return resp, nil
}

func (s *subjectService) Get(ctx context.Context, id uint) (*dto.SubjectResponse, error) {
	subject, err := s.subjectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var resp dto.SubjectResponse
	copier.Copy(&resp, subject)
	return &resp, nil
}

func (s *subjectService) Create(ctx context.Context, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("subject name is required")
	}
	subject := model.Subject{Name: name, Description: strings.TrimSpace(req.Description)}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subjects := s.subjectRepo.WithTx(tx)
		taken, err := subjects.NameTaken(ctx, name, 0)
		if err != nil {
			return apperr.Internal(err, "checking subject name")
		}
		if taken {
			return apperr.Conflict("subject %q already exists", name)
		}
		if err := subjects.Create(ctx, &subject); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("subject %q already exists", name)
			}
			return apperr.Internal(err, "creating subject")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.SubjectResponse
	copier.Copy(&resp, &subject)
	return &resp, nil
}

func (s *subjectService) Update(ctx context.Context, id uint, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("subject name is required")
	}

	var subject *model.Subject
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subjects := s.subjectRepo.WithTx(tx)
		var err error
		subject, err = subjects.FindByID(ctx, id)
		if err != nil {
			return err
		}
		taken, err := subjects.NameTaken(ctx, name, id)
		if err != nil {
			return apperr.Internal(err, "checking subject name")
		}
		if taken {
			return apperr.Conflict("subject %q already exists", name)
		}
		subject.Name = name
		subject.Description = strings.TrimSpace(req.Description)
		if err := subjects.Update(ctx, subject); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("subject %q already exists", name)
			}
			return apperr.Internal(err, "updating subject %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.SubjectResponse
	copier.Copy(&resp, subject)
	return &resp, nil
}

// Delete refuses to remove a subject that still has chapters.
func (s *subjectService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subjects := s.subjectRepo.WithTx(tx)
		if _, err := subjects.FindByID(ctx, id); err != nil {
			return err
		}
		chapters, err := subjects.CountChapters(ctx, id)
		if err != nil {
			return apperr.Internal(err, "counting chapters of subject %d", id)
		}
		if chapters > 0 {
			return apperr.InUse("subject %d still has %d chapter(s); delete them first", id, chapters)
		}
		if err := subjects.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "deleting subject %d", id)
		}
		log.Info().Uint("subjectID", id).Msg("Subject deleted")
		return nil
	})
}
