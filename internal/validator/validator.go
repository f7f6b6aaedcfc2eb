package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the school-domain tag
// rules used across the request DTOs.
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents one failed field rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve))
	for i, e := range ve {
		messages[i] = fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return "validation failed: " + strings.Join(messages, ", ")
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerDomainRules()

	return v
}

// Validate validates a struct and returns nil when every rule passes.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs = append(errs, ValidationError{
			Field:   fieldErr.Field(),
			Message: v.errorMessage(fieldErr),
			Value:   fieldErr.Value(),
			Rule:    fieldErr.Tag(),
		})
	}
	return errs
}

func (v *Validator) registerDomainRules() {
	// Grades are school years 1-13.
	v.validate.RegisterValidation("grade_level", func(fl validator.FieldLevel) bool {
		level, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return level >= 1 && level <= 13
	})

	// A timetable has eight periods per day.
	v.validate.RegisterValidation("period_number", func(fl validator.FieldLevel) bool {
		period, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return period >= 1 && period <= 8
	})

	v.validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "monday", "tuesday", "wednesday", "thursday", "friday":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("event_category", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "academic", "cultural", "sports", "general":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("sport_category", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "indoor", "outdoor", "aquatic", "athletic":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("achievement_category", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "academic", "sports", "arts", "other":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("announcement_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "general", "urgent", "event", "holiday", "academic":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("audience_tag", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "all", "user", "admin":
			return true
		}
		return false
	})
}

func (v *Validator) errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "grade_level":
		return "must be a grade between 1 and 13"
	case "period_number":
		return "must be a period between 1 and 8"
	case "weekday":
		return "must be a weekday (monday-friday)"
	case "event_category":
		return "must be academic, cultural, sports or general"
	case "sport_category":
		return "must be indoor, outdoor, aquatic or athletic"
	case "achievement_category":
		return "must be academic, sports, arts or other"
	case "announcement_type":
		return "must be general, urgent, event, holiday or academic"
	case "audience_tag":
		return "must be all, user or admin"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
