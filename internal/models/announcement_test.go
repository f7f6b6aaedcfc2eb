package models

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestAnnouncement_IsCurrentlyActive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		active bool
		expiry time.Time
		want   bool
	}{
		{"active and unexpired", true, now.Add(time.Hour), true},
		{"active but expired", true, now.Add(-time.Hour), false},
		{"inactive", false, now.Add(time.Hour), false},
		{"expiry exactly now", true, now, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Announcement{IsActive: tt.active, ExpiryDate: tt.expiry}
			if got := a.IsCurrentlyActive(now); got != tt.want {
				t.Errorf("IsCurrentlyActive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnnouncement_TargetsRole(t *testing.T) {
	tests := []struct {
		name     string
		audience []string
		role     UserRole
		want     bool
	}{
		{"empty audience targets everyone", nil, RoleUser, true},
		{"all tag targets everyone", []string{"all"}, RoleUser, true},
		{"matching role", []string{"admin"}, RoleAdmin, true},
		{"non-matching role", []string{"admin"}, RoleUser, false},
		{"mixed tags", []string{"admin", "user"}, RoleUser, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Announcement{TargetAudience: datatypes.NewJSONSlice(tt.audience)}
			if got := a.TargetsRole(tt.role); got != tt.want {
				t.Errorf("TargetsRole(%v) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
