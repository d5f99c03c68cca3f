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

type QuestionService interface {
	CreateQuestion(ctx context.Context, quizID uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, quizID, id uint) (*dto.QuestionResponse, error)
	GetAllQuestions(ctx context.Context, quizID uint) ([]dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, quizID, id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, quizID, id uint) error
}

type questionService struct {
	repo     repository.QuestionRepository
	quizRepo repository.QuizRepository
	db       *gorm.DB
}

func NewQuestionService(repo repository.QuestionRepository, quizRepo repository.QuizRepository, db *gorm.DB) QuestionService {
	return &questionService{repo: repo, quizRepo: quizRepo, db: db}
}

func (s *questionService) CreateQuestion(ctx context.Context, quizID uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{QuizID: quizID}
	if err := applyQuestionRequest(&question, req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.quizRepo.WithTx(tx).FindByID(ctx, quizID); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, &question); err != nil {
			return apperr.Internal(err, "creating question for quiz %d", quizID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, quizID, id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByQuizAndID(ctx, quizID, id)
	if err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(ctx context.Context, quizID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.quizRepo.FindByID(ctx, quizID); err != nil {
		return nil, err
	}
	questions, err := s.repo.FindByQuizID(ctx, quizID)
	if err != nil {
		return nil, apperr.Internal(err, "listing questions of quiz %d", quizID)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, quizID, id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	var question *model.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions := s.repo.WithTx(tx)
		var err error
		question, err = questions.FindByQuizAndID(ctx, quizID, id)
		if err != nil {
			return err
		}
		if err := applyQuestionRequest(question, req); err != nil {
			return err
		}
		if err := questions.Update(ctx, question); err != nil {
			return apperr.Internal(err, "updating question %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, quizID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions := s.repo.WithTx(tx)
		if _, err := questions.FindByQuizAndID(ctx, quizID, id); err != nil {
			return err
		}
		if err := questions.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "deleting question %d", id)
		}
		log.Info().Uint("quizID", quizID).Uint("questionID", id).Msg("Question deleted")
		return nil
	})
}

func applyQuestionRequest(question *model.Question, req dto.QuestionRequest) error {
	candidate := model.Question{
		QuestionStatement: strings.TrimSpace(req.QuestionStatement),
		Option1:           req.Option1,
		Option2:           req.Option2,
		Option3:           req.Option3,
		Option4:           req.Option4,
		CorrectOption:     req.CorrectOption,
	}
	if err := validateQuestion(&candidate); err != nil {
		return err
	}
	question.QuestionStatement = candidate.QuestionStatement
	question.Option1 = candidate.Option1
	question.Option2 = candidate.Option2
	question.Option3 = candidate.Option3
	question.Option4 = candidate.Option4
	question.CorrectOption = candidate.CorrectOption
	return nil
}

// validateQuestion enforces a non-empty statement, four distinct non-blank
// options and a correct option equal to exactly one of them.
func validateQuestion(q *model.Question) error {
	if q.QuestionStatement == "" {
		return apperr.Validation("question_statement is required")
	}
	seen := make(map[string]struct{}, 4)
	for i, opt := range q.Options() {
		if strings.TrimSpace(opt) == "" {
			return apperr.Validation("option%d is required", i+1)
		}
		if _, dup := seen[opt]; dup {
			return apperr.Validation("options must be distinct; %q appears more than once", opt)
		}
		seen[opt] = struct{}{}
	}
	if !q.HasValidCorrectOption() {
		return apperr.Validation("correct_option must match one of the four options")
	}
	return nil
}
