package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
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

func newTestExportService(db *gorm.DB, dir string) *exportService {
	return &exportService{
		reportRepo: repository.NewReportRepository(db),
		dir:        dir,
		now:        func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) },
		newID:      func() string { return "abcd1234" },
	}
}

func TestExportAllScoresRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	alice := testutil.SeedUser(t, db, "alice@example.com", "Alice A", model.RoleUser)
	bob := testutil.SeedUser(t, db, "bob@example.com", "Bob B", model.RoleUser)
	_, _, algebra := testutil.SeedCatalog(t, db, "Algebra")
	_, orphanChapter, history := testutil.SeedCatalog(t, db, "History")

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s1 := testutil.SeedScore(t, db, algebra.ID, alice.ID, 2, 3, at)
	s2 := testutil.SeedScore(t, db, history.ID, bob.ID, 1, 1, at.Add(time.Hour))

	require.NoError(t, db.Delete(&model.Chapter{}, orphanChapter.ID).Error)

	dir := filepath.Join(t.TempDir(), "nested", "exports")
	svc := newTestExportService(db, dir)
	resp, err := svc.ExportAllScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "scores_export_20260506_070809_abcd1234.csv", resp.Filename)
	assert.Equal(t, filepath.Join(dir, resp.Filename), resp.Filepath)

	f, err := os.Open(resp.Filepath)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{
		uintString(s1.ID), "alice@example.com", "Alice A", "Algebra quiz", "Algebra subject", "Algebra chapter",
		"2", "3", "2026-01-02 03:04:05",
	}, records[1])
	assert.Equal(t, []string{
		uintString(s2.ID), "bob@example.com", "Bob B", "History quiz", "N/A", "N/A",
		"1", "1", "2026-01-02 04:04:05",
	}, records[2])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")

	path, err := svc.OpenExport(resp.Filename)
	require.NoError(t, err)
	assert.Equal(t, resp.Filepath, path)
}

func TestExportFailureReturnsExportError(t *testing.T) {
	db := testutil.DB(t)
	blocker := filepath.Join(t.TempDir(), "exports")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	_, err := newTestExportService(db, blocker).ExportAllScores(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindExport, apperr.KindOf(err))
	assert.Equal(t, "internal server error", apperr.PublicMessage(err))
}

func TestOpenExportRejectsTraversal(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestExportService(db, t.TempDir())

	for _, name := range []string{"../etc/passwd", "scores_export_../../x.csv", "/tmp/scores_export_1.csv", "notes.txt", ""} {
		_, err := svc.OpenExport(name)
		assert.True(t, apperr.Is(err, apperr.KindValidation), name)
	}

	_, err := svc.OpenExport("scores_export_missing.csv")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
