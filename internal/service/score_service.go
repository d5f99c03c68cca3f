package service

import (
	"context"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/repository"
)

type ScoreService interface {
	History(ctx context.Context, userID uint) ([]dto.ScoreHistoryItem, error)
	QuizResults(ctx context.Context, quizID uint) ([]dto.QuizResultItem, error)
}

type scoreService struct {
	scoreRepo repository.ScoreRepository
	quizRepo  repository.QuizRepository
	converter ScoreConverterService
}

func NewScoreService(scoreRepo repository.ScoreRepository, quizRepo repository.QuizRepository, converter ScoreConverterService) ScoreService {
	return &scoreService{scoreRepo: scoreRepo, quizRepo: quizRepo, converter: converter}
}

// History lists the user's attempts newest first. Attempts on quizzes that
// were deleted since keep their row with an empty quiz name.
func (s *scoreService) History(ctx context.Context, userID uint) ([]dto.ScoreHistoryItem, error) {
	scores, err := s.scoreRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err, "loading scores of user %d", userID)
	}
	items := make([]dto.ScoreHistoryItem, 0, len(scores))
	for _, sc := range scores {
		item := dto.ScoreHistoryItem{
			ScoreID:            sc.ID,
			QuizID:             sc.QuizID,
			TotalScored:        sc.TotalScored,
			TotalPossible:      sc.TotalPossible,
			Percentage:         s.converter.Percentage(sc.TotalScored, sc.TotalPossible),
			TimeStampOfAttempt: sc.TimeStampOfAttempt,
		}
		if sc.Quiz != nil {
			item.QuizName = sc.Quiz.Name
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *scoreService) QuizResults(ctx context.Context, quizID uint) ([]dto.QuizResultItem, error) {
	if _, err := s.quizRepo.FindByID(ctx, quizID); err != nil {
		return nil, err
	}
	scores, err := s.scoreRepo.FindAllByQuiz(ctx, quizID)
	if err != nil {
		return nil, apperr.Internal(err, "loading scores of quiz %d", quizID)
	}
	items := make([]dto.QuizResultItem, 0, len(scores))
	for _, sc := range scores {
		item := dto.QuizResultItem{
			ScoreID:            sc.ID,
			UserID:             sc.UserID,
			TotalScored:        sc.TotalScored,
			TotalPossible:      sc.TotalPossible,
			Percentage:         s.converter.Percentage(sc.TotalScored, sc.TotalPossible),
			TimeStampOfAttempt: sc.TimeStampOfAttempt,
		}
		if sc.User != nil {
			item.UserEmail = sc.User.Email
			item.UserFullName = sc.User.FullName
		}
		items = append(items, item)
	}
	return items, nil
}
