package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/repository"
)

const searchLimit = 50

type SearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	userRepo    repository.UserRepository
	subjectRepo repository.SubjectRepository
	quizRepo    repository.QuizRepository
}

func NewSearchService(userRepo repository.UserRepository, subjectRepo repository.SubjectRepository, quizRepo repository.QuizRepository) SearchService {
	return &searchService{userRepo: userRepo, subjectRepo: subjectRepo, quizRepo: quizRepo}
}

// Search does a case-insensitive substring match over users, subjects and
// quizzes, capping each category.
func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, apperr.Validation("search query must not be empty")
	}

	users, err := s.userRepo.Search(ctx, term, searchLimit)
	if err != nil {
		return nil, apperr.Internal(err, "searching users")
	}
	subjects, err := s.subjectRepo.Search(ctx, term, searchLimit)
	if err != nil {
		return nil, apperr.Internal(err, "searching subjects")
	}
	quizzes, err := s.quizRepo.Search(ctx, term, searchLimit)
	if err != nil {
		return nil, apperr.Internal(err, "searching quizzes")
	}

	resp := &dto.SearchResponse{
		Query:    term,
		Users:    make([]dto.UserResponse, 0, len(users)),
		Subjects: make([]dto.SubjectResponse, 0, len(subjects)),
		Quizzes:  make([]dto.QuizResponse, 0, len(quizzes)),
	}
	copier.Copy(&resp.Users, &users)
	copier.Copy(&resp.Subjects, &subjects)
	copier.Copy(&resp.Quizzes, &quizzes)
	return resp, nil
}
