package playback

import "github.com/cyberschool/cyberstorm_api/exercise"

// View is a render-ready copy of the controller state.
type View struct {
	State       State
	CourseID    string
	CourseTitle string

	PageIndex        int
	PageCount        int
	PageTitle        string
	PageState        PageState
	HighestPageIndex int
	Percent          int

	ReadOnly       bool
	ForwardEnabled bool
	CheckEnabled   bool
	Saving         bool

	Components []ComponentView
	LastCheck  *CheckResult
}

type ComponentView struct {
	// Position is the component's index on the page, as passed to Interact.
	Position    int
	Kind        exercise.Kind
	Props       exercise.Props
	Interactive bool
	// Broken is set when the stored props could not be decoded.
	Broken      bool
	Response    exercise.Response
	Arrangement *Arrangement
}

// View snapshots the controller. ParentTeacherTip components are left out unless the session
// belongs to a teacher or parent.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{State: c.state, HighestPageIndex: c.highest}
	if c.course == nil {
		return v
	}
	v.CourseID = c.course.ID
	v.CourseTitle = c.course.Title
	v.PageCount = len(c.pages)

	if c.state == StateCompleted {
		v.PageIndex = len(c.pages) - 1
		v.Percent = 100
		return v
	}
	if c.state != StateActive {
		return v
	}

	v.PageIndex = c.current
	v.PageTitle = c.course.Pages[c.current].Title
	v.PageState = c.pageState
	v.Percent = (c.highest + 1) * 100 / len(c.pages)
	v.ReadOnly = c.readOnly
	v.ForwardEnabled = c.forwardEnabled()
	v.CheckEnabled = c.pageState == PageCheckEnabled && !c.saving
	v.Saving = c.saving
	if c.lastCheck != nil {
		lc := *c.lastCheck
		v.LastCheck = &lc
	}

	showTips := c.sess != nil && c.sess.SeesTeacherTips()
	for i, it := range c.pages[c.current] {
		if it.Kind == exercise.ParentTeacherTip && !showTips {
			continue
		}
		cv := ComponentView{
			Position:    i,
			Kind:        it.Kind,
			Props:       it.Props,
			Interactive: it.Interactive(),
			Broken:      it.Err != nil,
			Response:    c.responses[i],
		}
		if a, ok := c.arrangements[i]; ok {
			cv.Arrangement = &a
		}
		v.Components = append(v.Components, cv)
	}
	return v
}
