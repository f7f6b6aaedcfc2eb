package validator

import (
	"time"
)

// ===== AUTH =====

type SignupRequest struct {
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"omitempty,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	AgreeToTerms bool   `json:"agree_to_terms"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// ===== STUDENT =====

type StudentCreateRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	Grade         string `json:"grade" validate:"required,grade_level"`
	Gender        string `json:"gender" validate:"omitempty,oneof=male female other"`
	ParentName    string `json:"parent_name" validate:"omitempty,max=200"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=30"`
}

type StudentUpdateRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	Grade         *string `json:"grade" validate:"omitempty,grade_level"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=male female other"`
	ParentName    *string `json:"parent_name" validate:"omitempty,max=200"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
}

// ===== EVENT =====

type EventCreateRequest struct {
	Title       string    `json:"title" form:"title" validate:"required,min=1,max=200"`
	Student     string    `json:"student" form:"student" validate:"omitempty,max=200"`
	Award       string    `json:"award" form:"award" validate:"omitempty,max=200"`
	Category    string    `json:"category" form:"category" validate:"required,event_category"`
	Date        time.Time `json:"date" form:"date" time_format:"2006-01-02" validate:"required"`
	Venue       string    `json:"venue" form:"venue" validate:"omitempty,max=200"`
	Description string    `json:"description" form:"description" validate:"omitempty,max=2000"`
	Status      string    `json:"status" form:"status" validate:"omitempty,oneof=upcoming completed canceled"`
	Audience    string    `json:"audience" form:"audience" validate:"omitempty,max=200"`
	Organizer   string    `json:"organizer" form:"organizer" validate:"omitempty,max=200"`
}

type EventUpdateRequest struct {
	Title       *string    `json:"title" form:"title" validate:"omitempty,min=1,max=200"`
	Student     *string    `json:"student" form:"student" validate:"omitempty,max=200"`
	Award       *string    `json:"award" form:"award" validate:"omitempty,max=200"`
	Category    *string    `json:"category" form:"category" validate:"omitempty,event_category"`
	Date        *time.Time `json:"date" form:"date" time_format:"2006-01-02"`
	Venue       *string    `json:"venue" form:"venue" validate:"omitempty,max=200"`
	Description *string    `json:"description" form:"description" validate:"omitempty,max=2000"`
	Status      *string    `json:"status" form:"status" validate:"omitempty,oneof=upcoming completed canceled"`
	Audience    *string    `json:"audience" form:"audience" validate:"omitempty,max=200"`
	Organizer   *string    `json:"organizer" form:"organizer" validate:"omitempty,max=200"`
}

// ===== SPORT =====

type SportCreateRequest struct {
	Title             string    `json:"title" validate:"required,min=1,max=200"`
	Type              string    `json:"type" validate:"omitempty,max=100"`
	Category          string    `json:"category" validate:"required,sport_category"`
	Date              time.Time `json:"date" validate:"required"`
	Time              string    `json:"time" validate:"omitempty,max=20"`
	Venue             string    `json:"venue" validate:"omitempty,max=200"`
	ParticipatingTeam string    `json:"participating_team" validate:"omitempty,max=200"`
	Status            string    `json:"status" validate:"omitempty,oneof=upcoming completed canceled"`
	ColorCode         string    `json:"color_code" validate:"omitempty,max=20"`
}

type SportUpdateRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Type              *string    `json:"type" validate:"omitempty,max=100"`
	Category          *string    `json:"category" validate:"omitempty,sport_category"`
	Date              *time.Time `json:"date"`
	Time              *string    `json:"time" validate:"omitempty,max=20"`
	Venue             *string    `json:"venue" validate:"omitempty,max=200"`
	ParticipatingTeam *string    `json:"participating_team" validate:"omitempty,max=200"`
	Status            *string    `json:"status" validate:"omitempty,oneof=upcoming completed canceled"`
	ColorCode         *string    `json:"color_code" validate:"omitempty,max=20"`
}

// ===== ACHIEVEMENT =====

type AchievementCreateRequest struct {
	Title       string    `json:"title" form:"title" validate:"required,min=1,max=200"`
	Student     string    `json:"student" form:"student" validate:"required,max=200"`
	Grade       string    `json:"grade" form:"grade" validate:"omitempty,grade_level"`
	Award       string    `json:"award" form:"award" validate:"omitempty,max=200"`
	Category    string    `json:"category" form:"category" validate:"required,achievement_category"`
	Date        time.Time `json:"date" form:"date" time_format:"2006-01-02" validate:"required"`
	Venue       string    `json:"venue" form:"venue" validate:"omitempty,max=200"`
	Description string    `json:"description" form:"description" validate:"omitempty,max=2000"`
	Highlight   bool      `json:"highlight" form:"highlight"`
}

type AchievementUpdateRequest struct {
	Title       *string    `json:"title" form:"title" validate:"omitempty,min=1,max=200"`
	Student     *string    `json:"student" form:"student" validate:"omitempty,max=200"`
	Grade       *string    `json:"grade" form:"grade" validate:"omitempty,grade_level"`
	Award       *string    `json:"award" form:"award" validate:"omitempty,max=200"`
	Category    *string    `json:"category" form:"category" validate:"omitempty,achievement_category"`
	Date        *time.Time `json:"date" form:"date" time_format:"2006-01-02"`
	Venue       *string    `json:"venue" form:"venue" validate:"omitempty,max=200"`
	Description *string    `json:"description" form:"description" validate:"omitempty,max=2000"`
	Highlight   *bool      `json:"highlight" form:"highlight"`
}

// ===== ANNOUNCEMENT =====

type AnnouncementCreateRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Message        string     `json:"message" validate:"required,max=5000"`
	Type           string     `json:"type" validate:"omitempty,announcement_type"`
	TargetAudience []string   `json:"target_audience" validate:"omitempty,dive,audience_tag"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

type AnnouncementUpdateRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Message        *string    `json:"message" validate:"omitempty,max=5000"`
	Type           *string    `json:"type" validate:"omitempty,announcement_type"`
	IsActive       *bool      `json:"is_active"`
	TargetAudience []string   `json:"target_audience" validate:"omitempty,dive,audience_tag"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

// ===== NOTIFICATION =====

type NotificationCreateRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Description    string     `json:"description" validate:"required,max=5000"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	TargetAudience []string   `json:"target_audience" validate:"omitempty,dive,audience_tag"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

type NotificationUpdateRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=5000"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=low normal high"`
	IsActive       *bool      `json:"is_active"`
	TargetAudience []string   `json:"target_audience" validate:"omitempty,dive,audience_tag"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

// ===== TIMETABLE =====

type UpdateSlotRequest struct {
	Grade   string `json:"grade" validate:"required,grade_level"`
	Period  string `json:"period" validate:"required,period_number"`
	Day     string `json:"day" validate:"required,weekday"`
	Subject string `json:"subject" validate:"required,min=1,max=100"`
	Color   string `json:"color" validate:"omitempty,max=20"`
}

type ClearSlotRequest struct {
	Grade  string `json:"grade" validate:"required,grade_level"`
	Period string `json:"period" validate:"required,period_number"`
	Day    string `json:"day" validate:"required,weekday"`
}

type GradeCreateRequest struct {
	Grade  string `json:"grade" validate:"required,grade_level"`
	HallNo string `json:"hall_no" validate:"omitempty,max=20"`
	Room   string `json:"room" validate:"omitempty,max=50"`
}
