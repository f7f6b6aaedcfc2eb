package models

import (
	"testing"
	"time"
)

func TestEvent_ComputeDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		status EventStatus
		want   int
	}{
		{"ten days out", now.AddDate(0, 0, 10), EventStatusUpcoming, 10},
		{"later today", now.Add(2 * time.Hour), EventStatusUpcoming, 0},
		{"past date", now.AddDate(0, 0, -3), EventStatusUpcoming, 0},
		{"completed event", now.AddDate(0, 0, 10), EventStatusCompleted, 0},
		{"canceled event", now.AddDate(0, 0, 10), EventStatusCanceled, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Date: tt.date, Status: tt.status}
			e.ComputeDaysLeft(now)
			if e.DaysLeft != tt.want {
				t.Errorf("DaysLeft = %d, want %d", e.DaysLeft, tt.want)
			}
		})
	}
}
