package model

import "time"

// Score is written once per attempt and never updated.
type Score struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	QuizID             uint      `json:"quiz_id" gorm:"not null;index"`
	Quiz               *Quiz     `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID             uint      `json:"user_id" gorm:"not null;index"`
	User               *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TimeStampOfAttempt time.Time `json:"time_stamp_of_attempt" gorm:"not null;index"`
	TotalScored        int       `json:"total_scored" gorm:"not null"`
	TotalPossible      int       `json:"total_possible" gorm:"not null"`
}
