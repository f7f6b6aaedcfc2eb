package models

import (
	"time"
)

type EventCategory string

const (
	EventCategoryAcademic EventCategory = "academic"
	EventCategoryCultural EventCategory = "cultural"
	EventCategorySports   EventCategory = "sports"
	EventCategoryGeneral  EventCategory = "general"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCanceled  EventStatus = "canceled"
)

type Event struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"not null;size:200;index;uniqueIndex:idx_events_identity" validate:"required,min=1,max=200"`
	Student     string        `json:"student" gorm:"size:200" validate:"omitempty,max=200"`
	Award       string        `json:"award" gorm:"size:200" validate:"omitempty,max=200"`
	Category    EventCategory `json:"category" gorm:"not null;size:30;index" validate:"required,event_category"`
	Date        time.Time     `json:"date" gorm:"not null;index;uniqueIndex:idx_events_identity" validate:"required"`
	Venue       string        `json:"venue" gorm:"size:200" validate:"omitempty,max=200"`
	Description string        `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Image       string        `json:"image" gorm:"size:500"`
	Status      EventStatus   `json:"status" gorm:"default:upcoming;size:20;index" validate:"omitempty,oneof=upcoming completed canceled"`
	Audience    string        `json:"audience" gorm:"size:200" validate:"omitempty,max=200"`
	Organizer   string        `json:"organizer" gorm:"size:200" validate:"omitempty,max=200"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed on read, never stored.
	DaysLeft int `json:"days_left" gorm:"-"`
}

func (Event) TableName() string {
	return "events"
}

// ComputeDaysLeft fills DaysLeft relative to now; past or non-upcoming
// events report zero.
func (e *Event) ComputeDaysLeft(now time.Time) {
	if e.Status != EventStatusUpcoming || e.Date.Before(now) {
		e.DaysLeft = 0
		return
	}
	e.DaysLeft = int(e.Date.Sub(now).Hours() / 24)
}
