package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	QuizID            uint           `json:"quiz_id" gorm:"not null;index"`
	QuestionStatement string         `json:"question_statement" gorm:"type:text;not null"`
	Option1           string         `json:"option1" gorm:"size:255;not null"`
	Option2           string         `json:"option2" gorm:"size:255;not null"`
	Option3           string         `json:"option3" gorm:"size:255;not null"`
	Option4           string         `json:"option4" gorm:"size:255;not null"`
	CorrectOption     string         `json:"correct_option" gorm:"size:255;not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// HasValidCorrectOption reports whether CorrectOption matches exactly one of
// the four options.
func (q *Question) HasValidCorrectOption() bool {
	matches := 0
	for _, opt := range q.Options() {
		if opt == q.CorrectOption {
			matches++
		}
	}
	return matches == 1
}
