package validator

import (
	"testing"
	"time"
)

func TestValidator_GradeLevel(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		grade string
		valid bool
	}{
		{"first grade", "1", true},
		{"last grade", "13", true},
		{"with whitespace", " 10 ", true},
		{"zero", "0", false},
		{"too high", "14", false},
		{"not numeric", "ten", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GradeCreateRequest{Grade: tt.grade}
			err := v.Validate(req)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.grade, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Expected %q to be rejected", tt.grade)
			}
		})
	}
}

func TestValidator_SlotRules(t *testing.T) {
	v := New()

	valid := UpdateSlotRequest{
		Grade:   "10",
		Period:  "4",
		Day:     "monday",
		Subject: "Mathematics",
	}
	if err := v.Validate(valid); err != nil {
		t.Fatalf("Expected valid request, got %v", err)
	}

	t.Run("period out of range", func(t *testing.T) {
		req := valid
		req.Period = "9"
		if err := v.Validate(req); err == nil {
			t.Error("Expected period 9 to be rejected")
		}
	})

	t.Run("weekday is case insensitive", func(t *testing.T) {
		req := valid
		req.Day = "Friday"
		if err := v.Validate(req); err != nil {
			t.Errorf("Expected Friday to be valid, got %v", err)
		}
	})

	t.Run("weekend day", func(t *testing.T) {
		req := valid
		req.Day = "saturday"
		if err := v.Validate(req); err == nil {
			t.Error("Expected saturday to be rejected")
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		req := valid
		req.Subject = ""
		if err := v.Validate(req); err == nil {
			t.Error("Expected empty subject to be rejected")
		}
	})
}

func TestValidator_AudienceTags(t *testing.T) {
	v := New()

	expiry := time.Now().Add(24 * time.Hour)
	base := AnnouncementCreateRequest{
		Title:      "Notice",
		Message:    "School closes early today.",
		ExpiryDate: &expiry,
	}

	t.Run("known tags", func(t *testing.T) {
		req := base
		req.TargetAudience = []string{"all", "user", "admin"}
		if err := v.Validate(req); err != nil {
			t.Errorf("Expected known tags to be valid, got %v", err)
		}
	})

	t.Run("empty audience", func(t *testing.T) {
		req := base
		if err := v.Validate(req); err != nil {
			t.Errorf("Expected empty audience to be valid, got %v", err)
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		req := base
		req.TargetAudience = []string{"teachers"}
		if err := v.Validate(req); err == nil {
			t.Error("Expected unknown tag to be rejected")
		}
	})
}

func TestValidator_CategoryRules(t *testing.T) {
	v := New()

	t.Run("event categories", func(t *testing.T) {
		for _, category := range []string{"academic", "cultural", "sports", "general"} {
			req := EventCreateRequest{Title: "Event", Category: category, Date: time.Now()}
			if err := v.Validate(req); err != nil {
				t.Errorf("Expected category %q to be valid, got %v", category, err)
			}
		}
		req := EventCreateRequest{Title: "Event", Category: "festival", Date: time.Now()}
		if err := v.Validate(req); err == nil {
			t.Error("Expected category festival to be rejected")
		}
	})

	t.Run("sport categories", func(t *testing.T) {
		req := SportCreateRequest{Title: "Swimming Meet", Category: "aquatic", Date: time.Now()}
		if err := v.Validate(req); err != nil {
			t.Errorf("Expected aquatic to be valid, got %v", err)
		}
		req.Category = "esports"
		if err := v.Validate(req); err == nil {
			t.Error("Expected esports to be rejected")
		}
	})
}

func TestValidationErrors_Error(t *testing.T) {
	v := New()

	err := v.Validate(SigninRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("Expected validation to fail")
	}

	message := err.Error()
	if message == "" || message == "validation failed" {
		t.Errorf("Expected a descriptive message, got %q", message)
	}
}
