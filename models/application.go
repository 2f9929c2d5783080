package models

import "time"

// Application statuses follow the review pipeline on the dashboard.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// Application references a Scholarship by id only; the id is stored as
// submitted and not validated against the scholarships table.
type Application struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	ScholarshipID       uint      `json:"scholarship_id"`
	UserName            string    `json:"user_name"`
	UserEmail           string    `json:"user_email"`
	Phone               string    `json:"phone"`
	PhotoURL            string    `json:"photo_url"`
	Address             string    `json:"address"`
	Gender              string    `json:"gender"`
	Degree              string    `json:"degree"`
	SSCResult           string    `json:"ssc_result"`
	HSCResult           string    `json:"hsc_result"`
	StudyGap            string    `json:"study_gap"`
	UniversityName      string    `json:"university_name"`
	ScholarshipCategory string    `json:"scholarship_category"`
	SubjectCategory     string    `json:"subject_category"`
	Fees                float64   `json:"fees"`
	Status              string    `json:"status" gorm:"default:pending"`
	Feedback            string    `json:"feedback"`
	ApplyDate           time.Time `json:"apply_date"`
}
