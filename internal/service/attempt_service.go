package service

import (
	"context"
	"time"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const scoreMailTimeout = 30 * time.Second

type AttemptService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error)
	GetQuizForAttempt(ctx context.Context, quizID uint) (*dto.QuizAttemptResponse, error)
	SubmitAttempt(ctx context.Context, quizID, userID uint, answers map[uint]string) (*dto.ScoreResult, error)
}

type attemptService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	scoreRepo    repository.ScoreRepository
	converter    ScoreConverterService
	notifier     NotificationService
	db           *gorm.DB
	now          func() time.Time
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	scoreRepo repository.ScoreRepository,
	converter ScoreConverterService,
	notifier NotificationService,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		scoreRepo:    scoreRepo,
		converter:    converter,
		notifier:     notifier,
		db:           db,
		now:          time.Now,
	}
}

func (s *attemptService) ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount(ctx, nil)
	if err != nil {
		return nil, apperr.Internal(err, "listing quizzes")
	}
	return toQuizResponses(quizzes), nil
}

func (s *attemptService) GetQuizForAttempt(ctx context.Context, quizID uint) (*dto.QuizAttemptResponse, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	resp := &dto.QuizAttemptResponse{
		ID:           quiz.ID,
		Name:         quiz.Name,
		DateOfQuiz:   quiz.DateOfQuiz,
		TimeDuration: quiz.TimeDuration,
		Remarks:      quiz.Remarks,
		Questions:    make([]dto.AttemptQuestion, 0, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		resp.Questions = append(resp.Questions, dto.AttemptQuestion{
			ID:                q.ID,
			QuestionStatement: q.QuestionStatement,
			Options:           q.Options(),
		})
	}
	return resp, nil
}

// SubmitAttempt grades answers against the quiz's current questions and
// records one Score. Answers for questions outside the quiz are ignored and
// matching is exact.
func (s *attemptService) SubmitAttempt(ctx context.Context, quizID, userID uint, answers map[uint]string) (*dto.ScoreResult, error) {
	var (
		quiz  *model.Quiz
		score model.Score
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		quiz, err = s.quizRepo.WithTx(tx).FindByID(ctx, quizID)
		if err != nil {
			return err
		}
		questions, err := s.questionRepo.WithTx(tx).FindByQuizID(ctx, quizID)
		if err != nil {
			return apperr.Internal(err, "loading questions of quiz %d", quizID)
		}

		score = model.Score{
			QuizID:             quizID,
			UserID:             userID,
			TimeStampOfAttempt: s.now().UTC(),
			TotalScored:        grade(questions, answers),
			TotalPossible:      len(questions),
		}
		if err := s.scoreRepo.WithTx(tx).Create(ctx, &score); err != nil {
			return apperr.Internal(err, "recording score")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := dto.ScoreResult{
		ScoreID:       score.ID,
		QuizID:        quizID,
		TotalScored:   score.TotalScored,
		TotalPossible: score.TotalPossible,
		Percentage:    s.converter.Percentage(score.TotalScored, score.TotalPossible),
		AttemptedAt:   score.TimeStampOfAttempt,
	}
	log.Info().
		Uint("quizID", quizID).
		Uint("userID", userID).
		Uint("scoreID", score.ID).
		Int("scored", score.TotalScored).
		Int("possible", score.TotalPossible).
		Msg("Attempt recorded")

	s.notifier.NotifyScore(userID, quiz.Name, result)
	return &result, nil
}

func grade(questions []model.Question, answers map[uint]string) int {
	scored := 0
	for i := range questions {
		answer, ok := answers[questions[i].ID]
		if ok && answer == questions[i].CorrectOption {
			scored++
		}
	}
	return scored
}
