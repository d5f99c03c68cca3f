package model

import (
	"time"

	"gorm.io/gorm"
)

type Chapter struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description,omitempty" gorm:"size:255"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	Subject     *Subject       `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Quizzes     []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
