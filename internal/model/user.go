package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Email         string     `json:"email" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash  string     `json:"-" gorm:"column:password;not null"`
	FullName      string     `json:"full_name" gorm:"size:100;not null"`
	Qualification string     `json:"qualification,omitempty" gorm:"size:100"`
	DOB           *time.Time `json:"dob,omitempty" gorm:"type:date"`
	Role          string     `json:"role" gorm:"size:20;not null;default:'user'"`
	RegisteredOn  time.Time  `json:"registered_on" gorm:"autoCreateTime"`
	Scores        []Score    `json:"scores,omitempty" gorm:"foreignKey:UserID"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
