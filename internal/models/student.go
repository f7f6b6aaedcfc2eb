package models

import (
	"time"
)

type Student struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Address       string `json:"address" gorm:"size:500" validate:"omitempty,max=500"`
	Grade         string `json:"grade" gorm:"not null;size:20;index" validate:"required,grade_level"`
	Gender        string `json:"gender" gorm:"size:20" validate:"omitempty,oneof=male female other"`
	ParentName    string `json:"parent_name" gorm:"size:200" validate:"omitempty,max=200"`
	ContactNumber string `json:"contact_number" gorm:"size:30" validate:"omitempty,max=30"`

	// Soft delete flag: removed students stay in storage but drop out of
	// every list query. Uniqueness of (name, grade) is enforced by a
	// partial index over active rows only.
	IsActive bool `json:"is_active" gorm:"not null;default:true;index"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
