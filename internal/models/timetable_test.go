package models

import "testing"

func TestSectionForPeriod(t *testing.T) {
	tests := []struct {
		period int
		want   SlotSection
	}{
		{1, SectionTimetable},
		{4, SectionTimetable},
		{5, SectionInterval},
		{8, SectionInterval},
	}
	for _, tt := range tests {
		if got := SectionForPeriod(tt.period); got != tt.want {
			t.Errorf("SectionForPeriod(%d) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestTimetableSlot_Days(t *testing.T) {
	t.Run("set and clear", func(t *testing.T) {
		slot := TimetableSlot{}

		slot.SetDay("monday", SlotEntry{Subject: "Mathematics", Color: "#fff"})
		slot.SetDay("tuesday", SlotEntry{Subject: "History"})

		days := slot.DayEntries()
		if len(days) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(days))
		}
		if days["monday"].Subject != "Mathematics" {
			t.Errorf("Unexpected monday entry: %+v", days["monday"])
		}

		if !slot.ClearDay("monday") {
			t.Error("Expected ClearDay to report the entry existed")
		}
		if _, ok := slot.DayEntries()["monday"]; ok {
			t.Error("Expected monday to be removed")
		}
		if slot.DayEntries()["tuesday"].Subject != "History" {
			t.Error("Expected tuesday to survive")
		}
	})

	t.Run("clear absent day", func(t *testing.T) {
		slot := TimetableSlot{}
		if slot.ClearDay("friday") {
			t.Error("Expected ClearDay to report a missing entry")
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		slot := TimetableSlot{}
		slot.SetDay("monday", SlotEntry{Subject: "Mathematics"})
		slot.SetDay("monday", SlotEntry{Subject: "Physics"})

		if got := slot.DayEntries()["monday"].Subject; got != "Physics" {
			t.Errorf("Expected Physics after overwrite, got %q", got)
		}
	})
}

func TestGrade_SlotsBySection(t *testing.T) {
	grade := Grade{Slots: []TimetableSlot{
		{Period: "1", Section: SectionTimetable},
		{Period: "5", Section: SectionInterval},
		{Period: "2", Section: SectionTimetable},
	}}

	timetable, interval := grade.SlotsBySection()
	if len(timetable) != 2 {
		t.Errorf("Expected 2 timetable slots, got %d", len(timetable))
	}
	if len(interval) != 1 || interval[0].Period != "5" {
		t.Errorf("Unexpected interval slots: %+v", interval)
	}
}
