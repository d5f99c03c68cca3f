// Package testutil holds fixtures shared by package tests: an isolated
// in-memory SQLite store per test and seed helpers for the catalog.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lshigami/quizmaster/database"
	"github.com/lshigami/quizmaster/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// DB returns a migrated in-memory database private to tb.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:quizmaster_test_%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         database.NewGormLogger(gormLogger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB, email, fullName, role string) *model.User {
	tb.Helper()
	u := &model.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     fullName,
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSubject(tb testing.TB, db *gorm.DB, name string) *model.Subject {
	tb.Helper()
	s := &model.Subject{Name: name, Description: name + " description"}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}
	return s
}

func SeedChapter(tb testing.TB, db *gorm.DB, subjectID uint, name string) *model.Chapter {
	tb.Helper()
	c := &model.Chapter{Name: name, SubjectID: subjectID}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed chapter: %v", err)
	}
	return c
}

func SeedQuiz(tb testing.TB, db *gorm.DB, chapterID uint, name string) *model.Quiz {
	tb.Helper()
	q := &model.Quiz{Name: name, ChapterID: chapterID, TimeDuration: "00:30"}
	if err := db.Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

// SeedQuestion creates a question whose options are correct plus three
// distinct distractors.
func SeedQuestion(tb testing.TB, db *gorm.DB, quizID uint, correct string) *model.Question {
	tb.Helper()
	q := &model.Question{
		QuizID:            quizID,
		QuestionStatement: "Pick " + correct,
		Option1:           correct,
		Option2:           correct + "-2",
		Option3:           correct + "-3",
		Option4:           correct + "-4",
		CorrectOption:     correct,
	}
	if err := db.Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

// SeedCatalog builds subject > chapter > quiz and returns all three.
func SeedCatalog(tb testing.TB, db *gorm.DB, prefix string) (*model.Subject, *model.Chapter, *model.Quiz) {
	tb.Helper()
	s := SeedSubject(tb, db, prefix+" subject")
	c := SeedChapter(tb, db, s.ID, prefix+" chapter")
	q := SeedQuiz(tb, db, c.ID, prefix+" quiz")
	return s, c, q
}

func SeedScore(tb testing.TB, db *gorm.DB, quizID, userID uint, scored, possible int, at time.Time) *model.Score {
	tb.Helper()
	s := &model.Score{
		QuizID:             quizID,
		UserID:             userID,
		TimeStampOfAttempt: at,
		TotalScored:        scored,
		TotalPossible:      possible,
	}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed score: %v", err)
	}
	return s
}
