package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `json:"name" gorm:"size:100;not null"`
	ChapterID    uint           `json:"chapter_id" gorm:"not null;index"`
	Chapter      *Chapter       `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	DateOfQuiz   *time.Time     `json:"date_of_quiz,omitempty" gorm:"type:date"`
	TimeDuration string         `json:"time_duration" gorm:"size:10"` // HH:MM
	Remarks      string         `json:"remarks,omitempty" gorm:"size:255"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	Scores       []Score        `json:"scores,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Quiz) TableName() string { return "quizzes" }
