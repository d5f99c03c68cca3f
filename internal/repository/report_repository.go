package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ScoreExportRow is one score joined with its user and catalog chain. Link
// columns are nil when the referenced row is missing or soft-deleted.
type ScoreExportRow struct {
	ScoreID       uint
	UserEmail     *string
	UserFullName  *string
	QuizName      *string
	SubjectName   *string
	ChapterName   *string
	TotalScored   int
	TotalPossible int
	AttemptedAt   time.Time
}

type UserScoreTotal struct {
	UserID   uint
	Email    string
	FullName string
	Total    int
	Attempts int
}

type ReportRepository interface {
	ScoreExportRows(ctx context.Context) ([]ScoreExportRow, error)
	UserScoreTotals(ctx context.Context) ([]UserScoreTotal, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ScoreExportRows(ctx context.Context) ([]ScoreExportRow, error) {
	var rows []ScoreExportRow
	err := r.db.WithContext(ctx).Raw(`
SELECT s.id AS score_id,
       u.email AS user_email,
       u.full_name AS user_full_name,
       q.name AS quiz_name,
       sub.name AS subject_name,
       c.name AS chapter_name,
       s.total_scored AS total_scored,
       s.total_possible AS total_possible,
       s.time_stamp_of_attempt AS attempted_at
FROM scores s
LEFT JOIN users u ON u.id = s.user_id
LEFT JOIN quizzes q ON q.id = s.quiz_id AND q.deleted_at IS NULL
LEFT JOIN chapters c ON c.id = q.chapter_id AND c.deleted_at IS NULL
LEFT JOIN subjects sub ON sub.id = c.subject_id AND sub.deleted_at IS NULL
ORDER BY s.id ASC`).Scan(&rows).Error
	return rows, err
}

// UserScoreTotals sums total_scored over every score of each user with an
// email. Users without scores get a zero total.
func (r *reportRepository) UserScoreTotals(ctx context.Context) ([]UserScoreTotal, error) {
	var totals []UserScoreTotal
	err := r.db.WithContext(ctx).Raw(`
SELECT u.id AS user_id,
       u.email AS email,
       u.full_name AS full_name,
       COALESCE(SUM(s.total_scored), 0) AS total,
       COUNT(s.id) AS attempts
FROM users u
LEFT JOIN scores s ON s.user_id = u.id
WHERE u.email <> ''
GROUP BY u.id, u.email, u.full_name
ORDER BY u.id ASC`).Scan(&totals).Error
	return totals, err
}
