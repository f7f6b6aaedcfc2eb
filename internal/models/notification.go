package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// DefaultNotificationExpiry is applied when a creation request carries no
// expiry date.
const DefaultNotificationExpiry = 30 * 24 * time.Hour

type Notification struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	Title       string               `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description string               `json:"description" gorm:"not null;type:text" validate:"required,max=5000"`
	Priority    NotificationPriority `json:"priority" gorm:"default:normal;size:20;index" validate:"omitempty,oneof=low normal high"`

	IsActive bool `json:"is_active" gorm:"not null;default:true;index"`

	// Role tags this notification targets ("all", "user", "admin").
	TargetAudience datatypes.JSONSlice[string] `json:"target_audience" gorm:"type:jsonb"`

	ExpiryDate time.Time `json:"expiry_date" gorm:"not null;index"`

	ReadBy []NotificationRead `json:"read_by,omitempty" gorm:"foreignKey:NotificationID"`

	CreatedBy uint      `json:"created_by" gorm:"index"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) IsCurrentlyActive(now time.Time) bool {
	return n.IsActive && now.Before(n.ExpiryDate)
}

func (n *Notification) TargetsRole(role UserRole) bool {
	return audienceMatches(n.TargetAudience, role)
}

// NotificationRead records that one user read one notification. The
// unique pair index makes marking read idempotent at the storage layer.
type NotificationRead struct {
	ID             uint      `json:"-" gorm:"primaryKey"`
	NotificationID uint      `json:"-" gorm:"not null;uniqueIndex:idx_notification_reads_pair"`
	UserID         uint      `json:"user" gorm:"not null;uniqueIndex:idx_notification_reads_pair"`
	ReadAt         time.Time `json:"read_at" gorm:"not null"`
}

func (NotificationRead) TableName() string {
	return "notification_reads"
}
