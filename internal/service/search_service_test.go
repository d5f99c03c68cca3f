package service

import (
	"context"
	"testing"

	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSearchService(db *gorm.DB) SearchService {
	return NewSearchService(
		repository.NewUserRepository(db),
		repository.NewSubjectRepository(db),
		repository.NewQuizRepository(db),
	)
}

func subjectNames(subjects []dto.SubjectResponse) []string {
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.Name)
	}
	return names
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedSubject(t, db, "Physics")
	testutil.SeedSubject(t, db, "Math_101")
	testutil.SeedSubject(t, db, "Growth 5%")
	testutil.SeedSubject(t, db, `C:\Paths`)
	svc := newTestSearchService(db)
	ctx := context.Background()

	cases := []struct {
		query string
		want  []string
	}{
		{"_", []string{"Math_101"}},
		{"%", []string{"Growth 5%"}},
		{"5%", []string{"Growth 5%"}},
		{`\`, []string{`C:\Paths`}},
		{"h_1", []string{"Math_101"}},
		{"h%1", []string{}},
		{"PHYS", []string{"Physics"}},
	}
	for _, tc := range cases {
		resp, err := svc.Search(ctx, tc.query)
		require.NoError(t, err, tc.query)
		assert.Equal(t, tc.want, subjectNames(resp.Subjects), "query %q", tc.query)
	}
}

func TestSearchCoversUsersAndQuizzes(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "under_score@example.com", "Una", model.RoleUser)
	testutil.SeedUser(t, db, "plain@example.com", "Paul", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "percent")
	svc := newTestSearchService(db)

	resp, err := svc.Search(context.Background(), "_score")
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "under_score@example.com", resp.Users[0].Email)
	assert.Empty(t, resp.Quizzes)

	resp, err = svc.Search(context.Background(), "PERCENT QUIZ")
	require.NoError(t, err)
	require.Len(t, resp.Quizzes, 1)
	assert.Equal(t, quiz.ID, resp.Quizzes[0].ID)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	_, err := newTestSearchService(testutil.DB(t)).Search(context.Background(), "   ")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
