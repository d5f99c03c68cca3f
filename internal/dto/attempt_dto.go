package dto

import "time"

// AttemptQuestion is what a user sees while taking a quiz. The correct
// option is never part of it.
type AttemptQuestion struct {
	ID                uint     `json:"id"`
	QuestionStatement string   `json:"question_statement"`
	Options           []string `json:"options"`
}

type QuizAttemptResponse struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	DateOfQuiz   *time.Time        `json:"date_of_quiz,omitempty"`
	TimeDuration string            `json:"time_duration"`
	Remarks      string            `json:"remarks,omitempty"`
	Questions    []AttemptQuestion `json:"questions"`
}

type ScoreResult struct {
	ScoreID       uint      `json:"score_id"`
	QuizID        uint      `json:"quiz_id"`
	TotalScored   int       `json:"total_scored"`
	TotalPossible int       `json:"total_possible"`
	Percentage    float64   `json:"percentage"`
	AttemptedAt   time.Time `json:"time_stamp_of_attempt"`
}

// ScoreHistoryItem is one row of a user's own score history.
type ScoreHistoryItem struct {
	ScoreID            uint      `json:"id"`
	QuizID             uint      `json:"quiz_id"`
	QuizName           string    `json:"quiz_name"`
	TotalScored        int       `json:"total_scored"`
	TotalPossible      int       `json:"total_possible"`
	Percentage         float64   `json:"percentage"`
	TimeStampOfAttempt time.Time `json:"time_stamp_of_attempt"`
}

// QuizResultItem is one row of the admin results table for a quiz.
type QuizResultItem struct {
	ScoreID            uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	UserEmail          string    `json:"user_email"`
	UserFullName       string    `json:"user_full_name"`
	TotalScored        int       `json:"total_scored"`
	TotalPossible      int       `json:"total_possible"`
	Percentage         float64   `json:"percentage"`
	TimeStampOfAttempt time.Time `json:"time_stamp_of_attempt"`
}
