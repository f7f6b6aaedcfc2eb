package models

import (
	"time"
)

type SportCategory string

const (
	SportCategoryIndoor   SportCategory = "indoor"
	SportCategoryOutdoor  SportCategory = "outdoor"
	SportCategoryAquatic  SportCategory = "aquatic"
	SportCategoryAthletic SportCategory = "athletic"
)

type SportStatus string

const (
	SportStatusUpcoming  SportStatus = "upcoming"
	SportStatusCompleted SportStatus = "completed"
	SportStatusCanceled  SportStatus = "canceled"
)

type Sport struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	Title             string        `json:"title" gorm:"not null;size:200;index;uniqueIndex:idx_sports_identity" validate:"required,min=1,max=200"`
	Type              string        `json:"type" gorm:"size:100" validate:"omitempty,max=100"`
	Category          SportCategory `json:"category" gorm:"not null;size:30;index" validate:"required,sport_category"`
	Date              time.Time     `json:"date" gorm:"not null;index;uniqueIndex:idx_sports_identity" validate:"required"`
	Time              string        `json:"time" gorm:"size:20" validate:"omitempty,max=20"`
	Venue             string        `json:"venue" gorm:"size:200" validate:"omitempty,max=200"`
	ParticipatingTeam string        `json:"participating_team" gorm:"size:200" validate:"omitempty,max=200"`
	Status            SportStatus   `json:"status" gorm:"default:upcoming;size:20;index" validate:"omitempty,oneof=upcoming completed canceled"`
	ColorCode         string        `json:"color_code" gorm:"size:20" validate:"omitempty,max=20"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sport) TableName() string {
	return "sports"
}
