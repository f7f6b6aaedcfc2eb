package models

import (
	"time"

	"gorm.io/datatypes"
)

type AnnouncementType string

const (
	AnnouncementTypeGeneral  AnnouncementType = "general"
	AnnouncementTypeUrgent   AnnouncementType = "urgent"
	AnnouncementTypeEvent    AnnouncementType = "event"
	AnnouncementTypeHoliday  AnnouncementType = "holiday"
	AnnouncementTypeAcademic AnnouncementType = "academic"
)

// DefaultAnnouncementExpiry is applied when a creation request carries no
// expiry date.
const DefaultAnnouncementExpiry = 7 * 24 * time.Hour

type Announcement struct {
	ID      uint             `json:"id" gorm:"primaryKey"`
	Title   string           `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Message string           `json:"message" gorm:"not null;type:text" validate:"required,max=5000"`
	Type    AnnouncementType `json:"type" gorm:"default:general;size:30;index" validate:"omitempty,announcement_type"`

	IsActive bool `json:"is_active" gorm:"not null;default:true;index"`

	// Role tags this announcement targets ("all", "user", "admin").
	TargetAudience datatypes.JSONSlice[string] `json:"target_audience" gorm:"type:jsonb"`

	ExpiryDate time.Time `json:"expiry_date" gorm:"not null;index"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// IsCurrentlyActive is the derived predicate from the data model: active
// flag set and not yet expired. It is recomputed on every query, never
// stored.
func (a *Announcement) IsCurrentlyActive(now time.Time) bool {
	return a.IsActive && now.Before(a.ExpiryDate)
}

// TargetsRole reports whether the announcement is addressed to the given
// role. An empty audience or the "all" tag targets everyone.
func (a *Announcement) TargetsRole(role UserRole) bool {
	return audienceMatches(a.TargetAudience, role)
}

func audienceMatches(audience []string, role UserRole) bool {
	if len(audience) == 0 {
		return true
	}
	for _, tag := range audience {
		if tag == "all" || tag == string(role) {
			return true
		}
	}
	return false
}
