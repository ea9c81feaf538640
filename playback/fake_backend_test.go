package playback

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

type fakeBackend struct {
	mu       sync.Mutex
	course   *Course
	progress map[string]int
	saves    []int
	fetchErr error
	saveErr  error
	// block, when set, makes SaveProgress wait until it is closed.
	block chan struct{}
}

func newFakeBackend(course *Course) *fakeBackend {
	return &fakeBackend{course: course, progress: map[string]int{}}
}

func (f *fakeBackend) FetchCourse(ctx context.Context, courseIDString string) (*Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.course == nil || f.course.CourseIDString != courseIDString {
		return nil, ErrNotFound
	}
	cp := *f.course
	cp.Pages = append([]Page(nil), f.course.Pages...)
	return &cp, nil
}

func (f *fakeBackend) GetProgress(ctx context.Context, userID, courseID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.progress[userID+"/"+courseID]; ok {
		return v, nil
	}
	return -1, nil
}

func (f *fakeBackend) SaveProgress(ctx context.Context, courseID string, pageIndex int) error {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, pageIndex)
	key := "u1/" + courseID
	if cur, ok := f.progress[key]; !ok || pageIndex > cur {
		f.progress[key] = pageIndex
	}
	return nil
}

func (f *fakeBackend) ResetProgress(ctx context.Context, userID, courseID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.progress, userID+"/"+courseID)
	return nil
}

func (f *fakeBackend) stored(courseID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.progress["u1/"+courseID]; ok {
		return v
	}
	return -1
}

func (f *fakeBackend) setStored(courseID string, idx int) {
	f.mu.Lock()
	f.progress["u1/"+courseID] = idx
	f.mu.Unlock()
}

func comp(kind string, order int, props string) Component {
	return Component{ComponentType: kind, OrderIndex: order, Props: json.RawMessage(props)}
}

// scenarioCourse is three pages: plain text, a true/false with answer true, and a blank whose
// answer is "Paris".
func scenarioCourse() *Course {
	return &Course{
		ID:             "c-1",
		CourseIDString: "intro",
		Title:          "Intro to the Web",
		Pages: []Page{
			{ID: "p1", PageNumber: 1, Title: "Welcome", Components: []Component{
				comp("PlainText", 0, `{"text":"Welcome"}`),
			}},
			{ID: "p2", PageNumber: 2, Title: "Quiz", Components: []Component{
				comp("TrueFalse", 0, `{"statement":"HTTP is stateless","answer":"true"}`),
			}},
			{ID: "p3", PageNumber: 3, Title: "Capitals", Components: []Component{
				comp("FillInTheBlanks", 0, `{"text":"The capital of France is ___.","answer":"Paris"}`),
			}},
		},
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
