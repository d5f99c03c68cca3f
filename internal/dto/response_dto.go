package dto

import "time"

type SubjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChapterResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SubjectID   uint      `json:"subject_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type QuizResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	ChapterID     uint       `json:"chapter_id"`
	DateOfQuiz    *time.Time `json:"date_of_quiz,omitempty"`
	TimeDuration  string     `json:"time_duration"`
	Remarks       string     `json:"remarks,omitempty"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// QuestionResponse is the admin view and includes the correct option.
type QuestionResponse struct {
	ID                uint      `json:"id"`
	QuizID            uint      `json:"quiz_id"`
	QuestionStatement string    `json:"question_statement"`
	Option1           string    `json:"option1"`
	Option2           string    `json:"option2"`
	Option3           string    `json:"option3"`
	Option4           string    `json:"option4"`
	CorrectOption     string    `json:"correct_option"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
