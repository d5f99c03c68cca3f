package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var durationPattern = regexp.MustCompile(`^[0-9]{2}:[0-5][0-9]$`)

type QuizService interface {
	GetAll(ctx context.Context, chapterID *uint) ([]dto.QuizResponse, error)
	Get(ctx context.Context, id uint) (*dto.QuizResponse, error)
	Create(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error)
	Update(ctx context.Context, id uint, req dto.QuizRequest) (*dto.QuizResponse, error)
	Delete(ctx context.Context, id uint) error
}

type quizService struct {
	quizRepo    repository.QuizRepository
	chapterRepo repository.ChapterRepository
	db          *gorm.DB
}

func NewQuizService(quizRepo repository.QuizRepository, chapterRepo repository.ChapterRepository, db *gorm.DB) QuizService {
	return &quizService{quizRepo: quizRepo, chapterRepo: chapterRepo, db: db}
}

func (s *quizService) GetAll(ctx context.Context, chapterID *uint) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount(ctx, chapterID)
	if err != nil {
		return nil, apperr.Internal(err, "listing quizzes")
	}
	return toQuizResponses(quizzes), nil
}

func (s *quizService) Get(ctx context.Context, id uint) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.quizRepo.CountQuestions(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "counting questions of quiz %d", id)
	}
	resp := toQuizResponse(quiz)
	resp.QuestionCount = int(count)
	return resp, nil
}

func (s *quizService) Create(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error) {
	var quiz model.Quiz
	if err := applyQuizRequest(&quiz, req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.chapterRepo.WithTx(tx).FindByID(ctx, req.ChapterID); err != nil {
			return err
		}
		if err := s.quizRepo.WithTx(tx).Create(ctx, &quiz); err != nil {
			return apperr.Internal(err, "creating quiz")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toQuizResponse(&quiz), nil
}

func (s *quizService) Update(ctx context.Context, id uint, req dto.QuizRequest) (*dto.QuizResponse, error) {
	var (
		quiz  *model.Quiz
		count int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quizzes := s.quizRepo.WithTx(tx)
		var err error
		quiz, err = quizzes.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req.ChapterID != quiz.ChapterID {
			if _, err := s.chapterRepo.WithTx(tx).FindByID(ctx, req.ChapterID); err != nil {
				return err
			}
		}
		if err := applyQuizRequest(quiz, req); err != nil {
			return err
		}
		if err := quizzes.Update(ctx, quiz); err != nil {
			return apperr.Internal(err, "updating quiz %d", id)
		}
		count, err = quizzes.CountQuestions(ctx, id)
		if err != nil {
			return apperr.Internal(err, "counting questions of quiz %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toQuizResponse(quiz)
	resp.QuestionCount = int(count)
	return resp, nil
}

// Delete refuses to remove a quiz that has questions or recorded scores.
func (s *quizService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quizzes := s.quizRepo.WithTx(tx)
		if _, err := quizzes.FindByID(ctx, id); err != nil {
			return err
		}
		questions, err := quizzes.CountQuestions(ctx, id)
		if err != nil {
			return apperr.Internal(err, "counting questions of quiz %d", id)
		}
		if questions > 0 {
			return apperr.InUse("quiz %d still has %d question(s); delete them first", id, questions)
		}
		scores, err := quizzes.CountScores(ctx, id)
		if err != nil {
			return apperr.Internal(err, "counting scores of quiz %d", id)
		}
		if scores > 0 {
			return apperr.InUse("quiz %d has %d recorded score(s) and cannot be deleted", id, scores)
		}
		if err := quizzes.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "deleting quiz %d", id)
		}
		log.Info().Uint("quizID", id).Msg("Quiz deleted")
		return nil
	})
}

func applyQuizRequest(quiz *model.Quiz, req dto.QuizRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperr.Validation("quiz name is required")
	}
	duration := strings.TrimSpace(req.TimeDuration)
	if err := validateDuration(duration); err != nil {
		return err
	}

	var date *time.Time
	if req.DateOfQuiz != "" {
		d, err := time.Parse(dateLayout, req.DateOfQuiz)
		if err != nil {
			return apperr.Validation("date_of_quiz must be formatted as YYYY-MM-DD")
		}
		date = &d
	}

	quiz.Name = name
	quiz.ChapterID = req.ChapterID
	quiz.DateOfQuiz = date
	quiz.TimeDuration = duration
	quiz.Remarks = strings.TrimSpace(req.Remarks)
	return nil
}

// validateDuration accepts HH:MM with minutes 00-59 and rejects 00:00.
func validateDuration(d string) error {
	if !durationPattern.MatchString(d) || d == "00:00" {
		return apperr.Validation("time_duration must be HH:MM and longer than 00:00")
	}
	return nil
}

func toQuizResponse(quiz *model.Quiz) *dto.QuizResponse {
	var resp dto.QuizResponse
	copier.Copy(&resp, quiz)
	return &resp
}

func toQuizResponses(quizzes []repository.QuizWithCount) []dto.QuizResponse {
	resp := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		item := toQuizResponse(&quizzes[i].Quiz)
		item.QuestionCount = quizzes[i].QuestionCount
		resp = append(resp, *item)
	}
	return resp
}
