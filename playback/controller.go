package playback

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cyberschool/cyberstorm_api/exercise"
	"github.com/cyberschool/cyberstorm_api/shared"
)

type State int

const (
	StateLoading State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PageState is the sub-state of an active page.
type PageState int

const (
	PageUnattempted PageState = iota
	PageCheckEnabled
	PageCorrect
)

func (s PageState) String() string {
	switch s {
	case PageUnattempted:
		return "unattempted"
	case PageCheckEnabled:
		return "check-enabled"
	case PageCorrect:
		return "correct"
	}
	return fmt.Sprintf("PageState(%d)", int(s))
}

// Arrangement is the presentation order drawn for a shuffled component when its page is entered.
type Arrangement struct {
	// Items holds Sequencing item ids, or Matching definition (pair) ids.
	Items []string
	// Terms holds Matching term (pair) ids; empty for Sequencing.
	Terms []string
}

type CheckResult struct {
	PageIndex    int
	Correct      bool
	Statuses     []exercise.Status
	Unverifiable bool
}

type Option func(*Controller)

// WithRand sets the source used to shuffle Sequencing and Matching components.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// Controller sequences the pages of one course for one learner. All methods are safe for
// concurrent use; network calls are made without holding the lock, and their results are
// discarded if the learner navigated in the meantime.
type Controller struct {
	backend   Backend
	syncer    *Syncer
	sess      *Session
	courseRef string
	rng       *rand.Rand

	mu           sync.Mutex
	state        State
	epoch        uint64
	course       *Course
	pages        [][]exercise.Item
	highest      int
	current      int
	pageState    PageState
	readOnly     bool
	saving       bool
	responses    map[int]exercise.Response
	arrangements map[int]Arrangement
	lastCheck    *CheckResult
}

func NewController(backend Backend, syncer *Syncer, sess *Session, courseIDString string, opts ...Option) *Controller {
	c := &Controller{
		backend:   backend,
		syncer:    syncer,
		sess:      sess,
		courseRef: courseIDString,
		highest:   shared.NotStarted,
	}
	for _, o := range opts {
		o(c)
	}
	if c.rng == nil {
		seed := uint64(time.Now().UnixNano())
		c.rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return c
}

// Load fetches the course and the learner's progress and enters the resume page. With restart
// the stored progress is deleted first and playback starts at page 0. On failure the controller
// stays in StateLoading and the error wraps ErrLoad.
func (c *Controller) Load(ctx context.Context, restart bool) error {
	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	c.state = StateLoading
	c.mu.Unlock()

	course, err := c.backend.FetchCourse(ctx, c.courseRef)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	highest := shared.NotStarted
	if restart {
		c.syncer.Forget(course.ID)
		if err := c.backend.ResetProgress(ctx, c.sess.UserID(), course.ID); err != nil {
			return fmt.Errorf("%w: reset: %w", ErrLoad, err)
		}
	} else {
		highest, err = c.backend.GetProgress(ctx, c.sess.UserID(), course.ID)
		if err != nil {
			return fmt.Errorf("%w: progress: %w", ErrLoad, err)
		}
		if p := c.syncer.Pending(course.ID); p > highest {
			highest = p
		}
	}

	pages := decodePages(course)
	if len(pages) == 0 {
		return fmt.Errorf("%w: course %q has no pages", ErrLoad, course.CourseIDString)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return ErrStale
	}

	last := len(pages) - 1
	if highest > last {
		highest = last
	}
	if highest < shared.NotStarted {
		highest = shared.NotStarted
	}
	c.course = course
	c.pages = pages
	c.highest = highest

	if highest == last {
		c.state = StateCompleted
		c.current = last
		return nil
	}

	resume := 0
	if highest > shared.NotStarted {
		resume = min(highest+1, last)
	}
	c.state = StateActive
	c.enterPage(resume)
	return nil
}

// Restart deletes the learner's progress and plays the course from the first page.
func (c *Controller) Restart(ctx context.Context) error {
	return c.Load(ctx, true)
}

// enterPage resets transient state for page p. Callers hold c.mu.
func (c *Controller) enterPage(p int) {
	c.epoch++
	c.current = p
	c.responses = make(map[int]exercise.Response)
	c.arrangements = make(map[int]Arrangement)
	c.lastCheck = nil
	c.saving = false

	items := c.pages[p]
	for i, it := range items {
		if it.Props != nil && it.Kind.Shuffled() {
			c.arrangements[i] = c.arrange(it.Props)
		}
	}

	switch {
	case !exercise.HasInteractive(items):
		c.pageState = PageCorrect
		c.readOnly = false
		if p > c.highest {
			c.highest = p
			c.syncer.Submit(c.course.ID, p)
		}
	case p <= c.highest:
		c.pageState = PageCorrect
		c.readOnly = true
		for i, it := range items {
			if it.Interactive() && it.Props != nil {
				c.responses[i] = exercise.Canonical(it.Props)
			}
		}
	default:
		c.pageState = PageUnattempted
		c.readOnly = false
	}
}

func (c *Controller) arrange(p exercise.Props) Arrangement {
	var a Arrangement
	switch v := p.(type) {
	case exercise.SequencingProps:
		for _, it := range v.Items {
			a.Items = append(a.Items, it.ID)
		}
	case exercise.MatchingProps:
		for _, pair := range v.Pairs {
			a.Items = append(a.Items, pair.ID)
			a.Terms = append(a.Terms, pair.ID)
		}
	}
	c.rng.Shuffle(len(a.Items), func(i, j int) { a.Items[i], a.Items[j] = a.Items[j], a.Items[i] })
	c.rng.Shuffle(len(a.Terms), func(i, j int) { a.Terms[i], a.Terms[j] = a.Terms[j], a.Terms[i] })
	return a
}

func (c *Controller) forwardEnabled() bool {
	return c.state == StateActive && !c.saving && c.pageState == PageCorrect
}

// Interact records the learner's input for the component at position idx on the current page.
func (c *Controller) Interact(idx int, r exercise.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNotActive
	}
	if c.readOnly || c.pageState == PageCorrect || c.saving {
		return ErrReadOnly
	}
	items := c.pages[c.current]
	if idx < 0 || idx >= len(items) || !items[idx].Interactive() {
		return ErrNoSuchComponent
	}
	c.responses[idx] = r
	c.pageState = PageCheckEnabled
	c.lastCheck = nil
	return nil
}

// Check evaluates every component on the current page. A wrong answer clears all input and
// returns the page to PageUnattempted. A right answer unlocks forward navigation and writes the
// progress; if that write fails the result still reports Correct and the error is a *SaveError.
func (c *Controller) Check(ctx context.Context) (CheckResult, error) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return CheckResult{}, ErrNotActive
	}
	if c.pageState != PageCheckEnabled || c.saving {
		c.mu.Unlock()
		return CheckResult{}, ErrCheckDisabled
	}

	p := c.current
	page := exercise.CheckPage(c.pages[p], c.responses)
	result := CheckResult{
		PageIndex:    p,
		Correct:      page.Satisfied,
		Statuses:     page.Statuses,
		Unverifiable: page.Unverifiable(),
	}
	c.lastCheck = &result

	if !page.Satisfied {
		c.responses = make(map[int]exercise.Response)
		c.pageState = PageUnattempted
		c.mu.Unlock()
		return result, nil
	}

	c.pageState = PageCorrect
	if p > c.highest {
		c.highest = p
	}
	c.saving = true
	epoch := c.epoch
	courseID := c.course.ID
	c.mu.Unlock()

	saveErr := c.syncer.Flush(ctx, courseID, p)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return result, ErrStale
	}
	c.saving = false
	if saveErr != nil {
		return result, saveErr
	}
	return result, nil
}

// Next moves forward, or into StateCompleted from the last page.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return ErrNotActive
	}
	if !c.forwardEnabled() {
		return ErrNavigationLocked
	}
	if c.current == len(c.pages)-1 {
		c.epoch++
		c.state = StateCompleted
		c.lastCheck = nil
		return nil
	}
	c.enterPage(c.current + 1)
	return nil
}

// Prev moves back one page. From the completion view it returns to the last page; on the first
// page it does nothing.
func (c *Controller) Prev() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateCompleted:
		c.state = StateActive
		c.enterPage(len(c.pages) - 1)
		return nil
	case StateActive:
		if c.current > 0 {
			c.enterPage(c.current - 1)
		}
		return nil
	}
	return ErrNotActive
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HighestPageIndex is the controller's view of the high-water mark, including writes not yet
// confirmed by the server.
func (c *Controller) HighestPageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highest
}
