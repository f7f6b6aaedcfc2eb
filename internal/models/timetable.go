package models

import (
	"time"

	"gorm.io/datatypes"
)

// SlotSection names one of the two ordered slot lists a grade owns:
// periods 1-4 live in "timetable", periods 5-8 in "interval".
type SlotSection string

const (
	SectionTimetable SlotSection = "timetable"
	SectionInterval  SlotSection = "interval"
)

// SectionForPeriod maps a period number onto its slot list.
func SectionForPeriod(period int) SlotSection {
	if period <= 4 {
		return SectionTimetable
	}
	return SectionInterval
}

// Weekdays the timetable addresses, in display order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// SlotEntry is one (period, weekday) cell: the subject taught and its
// display color.
type SlotEntry struct {
	Subject string `json:"subject"`
	Color   string `json:"color"`
}

type Grade struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Level  string `json:"grade" gorm:"not null;uniqueIndex;size:20" validate:"required,grade_level"`
	HallNo string `json:"hall_no" gorm:"size:20" validate:"omitempty,max=20"`
	Room   string `json:"room" gorm:"size:50" validate:"omitempty,max=50"`

	Slots []TimetableSlot `json:"slots,omitempty" gorm:"foreignKey:GradeID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Grade) TableName() string {
	return "grades"
}

// SlotsBySection splits the grade's slots into the two ordered lists the
// API exposes.
func (g *Grade) SlotsBySection() (timetable, interval []TimetableSlot) {
	for _, slot := range g.Slots {
		if slot.Section == SectionTimetable {
			timetable = append(timetable, slot)
		} else {
			interval = append(interval, slot)
		}
	}
	return timetable, interval
}

// TimetableSlot is one period row of a grade's timetable. Days maps a
// weekday name to its SlotEntry and is stored as a JSONB document.
type TimetableSlot struct {
	ID      uint        `json:"id" gorm:"primaryKey"`
	GradeID uint        `json:"-" gorm:"not null;index;uniqueIndex:idx_timetable_slots_period"`
	Section SlotSection `json:"section" gorm:"not null;size:20" validate:"required,oneof=timetable interval"`
	Period  string      `json:"period" gorm:"not null;size:10;uniqueIndex:idx_timetable_slots_period"`

	Days datatypes.JSONType[map[string]SlotEntry] `json:"days" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TimetableSlot) TableName() string {
	return "timetable_slots"
}

// DayEntries returns the weekday map, never nil.
func (s *TimetableSlot) DayEntries() map[string]SlotEntry {
	days := s.Days.Data()
	if days == nil {
		days = make(map[string]SlotEntry)
	}
	return days
}

// SetDay overwrites one weekday cell.
func (s *TimetableSlot) SetDay(day string, entry SlotEntry) {
	days := s.DayEntries()
	days[day] = entry
	s.Days = datatypes.NewJSONType(days)
}

// ClearDay removes one weekday cell and reports whether it existed.
func (s *TimetableSlot) ClearDay(day string) bool {
	days := s.DayEntries()
	if _, ok := days[day]; !ok {
		return false
	}
	delete(days, day)
	s.Days = datatypes.NewJSONType(days)
	return true
}
