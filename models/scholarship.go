package models

import "time"

type Scholarship struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	ScholarshipName     string    `json:"scholarship_name"`
	UniversityName      string    `json:"university_name"`
	UniversityCountry   string    `json:"university_country"`
	UniversityCity      string    `json:"university_city"`
	UniversityWorldRank int       `json:"university_world_rank"`
	SubjectCategory     string    `json:"subject_category"`
	ScholarshipCategory string    `json:"scholarship_category"`
	Degree              string    `json:"degree"`
	TuitionFees         float64   `json:"tuition_fees"`
	ApplicationFees     float64   `json:"application_fees"`
	ServiceCharge       float64   `json:"service_charge"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	PostDate            time.Time `json:"post_date"`
	PostedUserEmail     string    `json:"posted_user_email"`
	ImageURL            string    `json:"image_url"`
}

// ScholarshipWithRating carries the average review rating left-joined onto a
// scholarship row. AvgRating is nil when the scholarship has no reviews.
type ScholarshipWithRating struct {
	Scholarship
	AvgRating *float64 `json:"avg_rating"`
}
