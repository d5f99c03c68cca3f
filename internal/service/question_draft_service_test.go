package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDraftResponse = `Here are your questions.

**Question:** What is the capital of France?
A: Berlin
B: Paris
C: Rome
D: Madrid
Answer: B

Question: Which planet is known as the red planet?
A) Venus
B) Mars
C) Jupiter
D) Saturn
Answer: Mars

Question: Broken question with duplicate options
A: same
B: same
C: other
D: more
Answer: C

Question: Missing answer
A: 1
B: 2
C: 3
D: 4
`

func TestParseDrafts(t *testing.T) {
	drafts := parseDrafts(sampleDraftResponse)
	require.Len(t, drafts, 2)

	assert.Equal(t, "What is the capital of France?", drafts[0].QuestionStatement)
	assert.Equal(t, "Paris", drafts[0].CorrectOption)
	assert.Equal(t, "Berlin", drafts[0].Option1)

	assert.Equal(t, "Which planet is known as the red planet?", drafts[1].QuestionStatement)
	assert.Equal(t, "Mars", drafts[1].CorrectOption)
	assert.Equal(t, "Saturn", drafts[1].Option4)
}

func TestDraftQuestions(t *testing.T) {
	db := testutil.DB(t)
	_, _, quiz := testutil.SeedCatalog(t, db, "Geography")
	quizRepo := repository.NewQuizRepository(db)
	ctx := context.Background()

	gen := &fakeGenerator{out: sampleDraftResponse}
	svc := NewQuestionDraftService(gen, quizRepo)

	resp, err := svc.DraftQuestions(ctx, quiz.ID, "", 1)
	require.NoError(t, err)
	assert.Len(t, resp.Drafts, 1)
	assert.Contains(t, gen.prompt, "Geography quiz")

	_, err = svc.DraftQuestions(ctx, quiz.ID, "capitals", 11)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.DraftQuestions(ctx, quiz.ID+100, "capitals", 2)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	failing := NewQuestionDraftService(&fakeGenerator{err: errors.New("quota exceeded")}, quizRepo)
	_, err = failing.DraftQuestions(ctx, quiz.ID, "capitals", 2)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}

func TestDraftQuestionsWithoutGenerator(t *testing.T) {
	db := testutil.DB(t)
	_, _, quiz := testutil.SeedCatalog(t, db, "x")

	svc := NewQuestionDraftService(nil, repository.NewQuizRepository(db))
	_, err := svc.DraftQuestions(context.Background(), quiz.ID, "", 3)
	require.Error(t, err)
	assert.Equal(t, 503, apperr.KindOf(err).HTTPStatus())
}

func TestPercentage(t *testing.T) {
	conv := NewScoreConverterService()
	assert.Equal(t, 0.0, conv.Percentage(0, 0))
	assert.Equal(t, 33.33, conv.Percentage(1, 3))
	assert.Equal(t, 66.67, conv.Percentage(2, 3))
	assert.Equal(t, 100.0, conv.Percentage(5, 5))
}
