// model/content.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Section groups courses on the catalogue page
type Section struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	OrderIndex int       `json:"order_index" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Course is a sequence of pages presented under a single title
type Course struct {
	ID             string                      `json:"id" gorm:"primaryKey"`
	CourseIDString string                      `json:"course_id_string" gorm:"uniqueIndex;not null"`
	Title          string                      `json:"title" gorm:"not null"`
	Description    string                      `json:"description" gorm:"type:text"`
	ImageURL       string                      `json:"image_url"`
	IsActive       bool                        `json:"is_active" gorm:"default:true"`
	SectionID      *string                     `json:"section_id" gorm:"index"`
	AllowedRoles   datatypes.JSONSlice[string] `json:"allowed_roles"` // empty = visible to every role
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`

	// Relationship
	Pages []Page `json:"pages,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// VisibleTo reports whether a learner holding role may see the course.
func (c *Course) VisibleTo(role string) bool {
	if len(c.AllowedRoles) == 0 {
		return true
	}
	for _, r := range c.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Page is the unit of progress gating. PageNumber is 1-based and orders pages within a course.
type Page struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	CourseID   string    `json:"course_id" gorm:"not null;index"`
	PageNumber int       `json:"page_number" gorm:"not null"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Components []Component `json:"components,omitempty" gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
}

type Component struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	PageID        string         `json:"page_id" gorm:"not null;index"`
	ComponentType string         `json:"component_type" gorm:"not null"`
	OrderIndex    int            `json:"order_index" gorm:"not null"`
	Props         datatypes.JSON `json:"props"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
