package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAttemptService(db *gorm.DB, notifier NotificationService) *attemptService {
	return NewAttemptService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewScoreRepository(db),
		NewScoreConverterService(),
		notifier,
		db,
	).(*attemptService)
}

func TestSubmitAttemptScoresExactMatches(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "maths")
	q1 := testutil.SeedQuestion(t, db, quiz.ID, "A")
	q2 := testutil.SeedQuestion(t, db, quiz.ID, "B")
	testutil.SeedQuestion(t, db, quiz.ID, "C")

	notifier := &fakeNotifier{}
	svc := newTestAttemptService(db, notifier)
	fixed := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, map[uint]string{
		q1.ID: "A",
		q2.ID: "X",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalScored)
	assert.Equal(t, 3, result.TotalPossible)
	assert.Equal(t, 33.33, result.Percentage)
	assert.True(t, fixed.Equal(result.AttemptedAt))

	var stored model.Score
	require.NoError(t, db.First(&stored, result.ScoreID).Error)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, 1, stored.TotalScored)
	assert.Equal(t, 3, stored.TotalPossible)

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, quiz.Name, notifier.notices[0].quizName)
}

func TestSubmitAttemptIsCaseSensitiveAndUntrimmed(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "case")
	q1 := testutil.SeedQuestion(t, db, quiz.ID, "Paris")
	q2 := testutil.SeedQuestion(t, db, quiz.ID, "Rome")

	svc := newTestAttemptService(db, &fakeNotifier{})
	result, err := svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, map[uint]string{
		q1.ID: "paris",
		q2.ID: " Rome",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalScored)
	assert.Equal(t, 2, result.TotalPossible)
}

func TestSubmitAttemptTotalPossibleIgnoresAnswerCount(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "count")
	for _, c := range []string{"A", "B", "C", "D"} {
		testutil.SeedQuestion(t, db, quiz.ID, c)
	}
	svc := newTestAttemptService(db, &fakeNotifier{})

	for _, answers := range []map[uint]string{nil, {}, {999: "A"}} {
		result, err := svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, answers)
		require.NoError(t, err)
		assert.Equal(t, 4, result.TotalPossible)
		assert.Equal(t, 0, result.TotalScored)
	}
}

func TestSubmitAttemptIgnoresQuestionsFromOtherQuizzes(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "mine")
	_, _, other := testutil.SeedCatalog(t, db, "other")
	own := testutil.SeedQuestion(t, db, quiz.ID, "A")
	foreign := testutil.SeedQuestion(t, db, other.ID, "Z")

	svc := newTestAttemptService(db, &fakeNotifier{})
	result, err := svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, map[uint]string{
		own.ID:     "wrong",
		foreign.ID: "Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalScored)
	assert.Equal(t, 1, result.TotalPossible)
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "gone")
	require.NoError(t, db.Delete(&model.Quiz{}, quiz.ID).Error)

	notifier := &fakeNotifier{}
	svc := newTestAttemptService(db, notifier)

	_, err := svc.SubmitAttempt(context.Background(), 4242, user.ID, nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	var count int64
	db.Model(&model.Score{}).Count(&count)
	assert.Zero(t, count)
	assert.Zero(t, notifier.count())
}

func TestConcurrentSubmissionsRecordSeparateScores(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "student@example.com", "Student", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "race")
	q := testutil.SeedQuestion(t, db, quiz.ID, "A")
	svc := newTestAttemptService(db, &fakeNotifier{})

	var wg sync.WaitGroup
	ids := make([]uint, 2)
	errs := make([]error, 2)
	for i, answer := range []string{"A", "B"} {
		wg.Add(1)
		go func(i int, answer string) {
			defer wg.Done()
			res, err := svc.SubmitAttempt(context.Background(), quiz.ID, user.ID, map[uint]string{q.ID: answer})
			errs[i] = err
			if err == nil {
				ids[i] = res.ScoreID
			}
		}(i, answer)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, ids[0], ids[1])

	history, err := NewScoreService(repository.NewScoreRepository(db), repository.NewQuizRepository(db), NewScoreConverterService()).
		History(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	scored := []int{history[0].TotalScored, history[1].TotalScored}
	assert.ElementsMatch(t, []int{0, 1}, scored)
}

func TestGetQuizForAttemptHidesCorrectOption(t *testing.T) {
	db := testutil.DB(t)
	_, _, quiz := testutil.SeedCatalog(t, db, "view")
	q := testutil.SeedQuestion(t, db, quiz.ID, "A")

	svc := newTestAttemptService(db, &fakeNotifier{})
	resp, err := svc.GetQuizForAttempt(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, q.ID, resp.Questions[0].ID)
	assert.Equal(t, []string{"A", "A-2", "A-3", "A-4"}, resp.Questions[0].Options)

	quizzes, err := svc.ListQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, 1, quizzes[0].QuestionCount)
}
