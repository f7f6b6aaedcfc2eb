package models

import (
	"time"
)

type AchievementCategory string

const (
	AchievementCategoryAcademic AchievementCategory = "academic"
	AchievementCategorySports   AchievementCategory = "sports"
	AchievementCategoryArts     AchievementCategory = "arts"
	AchievementCategoryOther    AchievementCategory = "other"
)

type Achievement struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Title       string              `json:"title" gorm:"not null;size:200;index;uniqueIndex:idx_achievements_identity" validate:"required,min=1,max=200"`
	Student     string              `json:"student" gorm:"not null;size:200;uniqueIndex:idx_achievements_identity" validate:"required,max=200"`
	Grade       string              `json:"grade" gorm:"size:20" validate:"omitempty,grade_level"`
	Award       string              `json:"award" gorm:"size:200" validate:"omitempty,max=200"`
	Category    AchievementCategory `json:"category" gorm:"not null;size:30;index" validate:"required,achievement_category"`
	Date        time.Time           `json:"date" gorm:"not null;index;uniqueIndex:idx_achievements_identity" validate:"required"`
	Venue       string              `json:"venue" gorm:"size:200" validate:"omitempty,max=200"`
	Description string              `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Image       string              `json:"image" gorm:"size:500"`
	Highlight   bool                `json:"highlight" gorm:"default:false;index"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}
