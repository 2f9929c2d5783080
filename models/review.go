package models

import "time"

type Review struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ScholarshipID  uint      `json:"scholarship_id"`
	UniversityName string    `json:"university_name"`
	ReviewerName   string    `json:"reviewer_name"`
	ReviewerEmail  string    `json:"reviewer_email"`
	ReviewerImage  string    `json:"reviewer_image"`
	Rating         float64   `json:"rating"`
	Comment        string    `json:"comment"`
	ReviewDate     time.Time `json:"review_date"`
}
