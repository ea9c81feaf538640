package model

import "time"

// CourseProgress is the per-(user, course) high-water mark. HighestPageIndex never decreases
// except through a delete.
type CourseProgress struct {
	UserID           string    `json:"user_id" gorm:"primaryKey"`
	CourseID         string    `json:"course_id" gorm:"primaryKey"`
	HighestPageIndex int       `json:"highest_page_index" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (CourseProgress) TableName() string {
	return "user_progress"
}
