package dto

import (
	"encoding/json"

	"github.com/cyberschool/cyberstorm_api/exercise"
)

// Course snapshot DTOs
type ComponentResponse struct {
	ComponentType string          `json:"component_type"`
	OrderIndex    int             `json:"order_index"`
	Props         json.RawMessage `json:"props"`
	// Invalid is set when the stored props fail schema validation; players treat the component as
	// unverifiable.
	Invalid bool `json:"invalid,omitempty"`
}

type PageResponse struct {
	ID         string              `json:"id"`
	PageNumber int                 `json:"page_number"`
	Title      string              `json:"title"`
	Components []ComponentResponse `json:"components"`
}

type CourseResponse struct {
	ID             string         `json:"id"`
	CourseIDString string         `json:"course_id_string"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"image_url"`
	IsActive       bool           `json:"is_active"`
	SectionID      *string        `json:"section_id"`
	AllowedRoles   []string       `json:"allowed_roles"`
	Pages          []PageResponse `json:"pages"`
	// Media maps every "media:" reference found in the course to a presigned download URL.
	Media map[string]string `json:"media,omitempty"`
}

// Catalogue DTOs
type CourseSummary struct {
	ID             string `json:"id"`
	CourseIDString string `json:"course_id_string"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	PageCount      int    `json:"page_count"`
}

type SectionWithCourses struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	OrderIndex int             `json:"order_index"`
	Courses    []CourseSummary `json:"courses"`
}

// Authoring DTOs
type CreateCourseRequest struct {
	Title          string `json:"title" validate:"required,max=200"`
	CourseIDString string `json:"course_id_string" validate:"required,course_slug"`
}

func (c *CreateCourseRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdateCourseRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	CourseIDString string   `json:"course_id_string" validate:"required,course_slug"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"image_url"`
	SectionID      *string  `json:"section_id"`
	IsActive       bool     `json:"is_active"`
	AllowedRoles   []string `json:"allowed_roles" validate:"dive,oneof=student teacher parent admin superadmin"`
}

func (c *UpdateCourseRequest) Validate() error {
	return GetValidator().Struct(c)
}

type CreatePageRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

func (c *CreatePageRequest) Validate() error {
	return GetValidator().Struct(c)
}

type ComponentInput struct {
	ComponentType string          `json:"component_type" validate:"required"`
	Props         json.RawMessage `json:"props"`
}

type ReplaceComponentsRequest struct {
	Components []ComponentInput `json:"components" validate:"dive"`
}

func (c *ReplaceComponentsRequest) Validate() error {
	return GetValidator().Struct(c)
}

// ComponentIssue describes why a submitted component was rejected.
type ComponentIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type CreateSectionRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	OrderIndex int    `json:"order_index"`
}

func (c *CreateSectionRequest) Validate() error {
	return GetValidator().Struct(c)
}

// Check DTOs
type CheckPageRequest struct {
	// Responses is keyed by the component's order_index.
	Responses map[int]exercise.Response `json:"responses"`
	// Record saves progress when the page is satisfied.
	Record bool `json:"record"`
}

type ComponentCheckResult struct {
	OrderIndex    int             `json:"order_index"`
	ComponentType string          `json:"component_type"`
	Status        exercise.Status `json:"status"`
}

type CheckPageResponse struct {
	Satisfied bool                   `json:"satisfied"`
	Recorded  bool                   `json:"recorded"`
	Results   []ComponentCheckResult `json:"results"`
}
