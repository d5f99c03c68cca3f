package model

import (
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:100;not null;index"`
	Description string         `json:"description,omitempty" gorm:"size:255"`
	Chapters    []Chapter      `json:"chapters,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
