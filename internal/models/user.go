package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	FirstName    string   `json:"first_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LastName     string   `json:"last_name" gorm:"size:100" validate:"omitempty,max=100"`
	Email        string   `json:"email" gorm:"not null;uniqueIndex;size:255" validate:"required,email"`
	Phone        string   `json:"phone" gorm:"size:30" validate:"omitempty,max=30"`
	Password     string   `json:"-" gorm:"not null;size:255"`
	Role         UserRole `json:"role" gorm:"default:user;size:20;index" validate:"omitempty,oneof=user admin"`
	AgreeToTerms bool     `json:"agree_to_terms" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
