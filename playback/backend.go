package playback

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/cyberschool/cyberstorm_api/exercise"
)

// Course is the read-only snapshot served by GET /courses/{courseIdString}.
type Course struct {
	ID             string `json:"id"`
	CourseIDString string `json:"course_id_string"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	Pages          []Page `json:"pages"`
}

type Page struct {
	ID         string      `json:"id"`
	PageNumber int         `json:"page_number"`
	Title      string      `json:"title"`
	Components []Component `json:"components"`
}

type Component struct {
	ComponentType string          `json:"component_type"`
	OrderIndex    int             `json:"order_index"`
	Props         json.RawMessage `json:"props"`
}

// Backend is everything the controller needs from the course API.
type Backend interface {
	FetchCourse(ctx context.Context, courseIDString string) (*Course, error)
	// GetProgress returns the stored high-water mark, or -1 when the learner has not started.
	GetProgress(ctx context.Context, userID, courseID string) (int, error)
	Saver
	ResetProgress(ctx context.Context, userID, courseID string) error
}

// Saver writes a high-water mark with keep-maximum semantics. Repeating a call is harmless.
type Saver interface {
	SaveProgress(ctx context.Context, courseID string, pageIndex int) error
}

// decodePages orders pages by page_number and components by order_index, then decodes props.
func decodePages(c *Course) [][]exercise.Item {
	pages := append([]Page(nil), c.Pages...)
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	c.Pages = pages

	out := make([][]exercise.Item, len(pages))
	for i := range pages {
		comps := append([]Component(nil), pages[i].Components...)
		sort.SliceStable(comps, func(a, b int) bool { return comps[a].OrderIndex < comps[b].OrderIndex })
		pages[i].Components = comps

		items := make([]exercise.Item, len(comps))
		for j, comp := range comps {
			items[j] = exercise.NewItem(comp.ComponentType, comp.OrderIndex, comp.Props)
		}
		out[i] = items
	}
	return out
}
