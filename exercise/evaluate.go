package exercise

import "strings"

// Response is the learner's transient input for one component. Which field is read depends on
// the component kind:
//
//	TrueFalse, ChooseOne, SelectImage, FillInTheBlanks: Value
//	MultipleChoice: Selected
//	Sequencing: Order (item ids)
//	Matching: Matches (definition id -> term id)
type Response struct {
	Value    string            `json:"value,omitempty"`
	Selected []string          `json:"selected,omitempty"`
	Order    []string          `json:"order,omitempty"`
	Matches  map[string]string `json:"matches,omitempty"`
}

// Empty reports whether the learner has not entered anything.
func (r Response) Empty() bool {
	return r.Value == "" && len(r.Selected) == 0 && len(r.Order) == 0 && len(r.Matches) == 0
}

type Status string

const (
	StatusDisplay      Status = "display"
	StatusCorrect      Status = "correct"
	StatusIncorrect    Status = "incorrect"
	StatusUnverifiable Status = "unverifiable"
)

// Evaluate applies the correctness predicate for p to r. It never reports StatusCorrect for
// props it cannot interpret.
func Evaluate(p Props, r Response) Status {
	switch v := p.(type) {
	case PlainTextProps, ImageProps, VideoProps, DividerProps, ParentTeacherTipProps:
		return StatusDisplay
	case TrueFalseProps:
		b, ok := parseBool(r.Value)
		return verdict(ok && b == v.Answer)
	case ChooseOneProps:
		return verdict(r.Value != "" && r.Value == v.Answer)
	case MultipleChoiceProps:
		return verdict(sameSet(r.Selected, v.Answer))
	case SelectImageProps:
		return verdict(r.Value != "" && r.Value == v.Answer)
	case FillInTheBlanksProps:
		want := strings.TrimSpace(v.Answer)
		return verdict(want != "" && strings.EqualFold(strings.TrimSpace(r.Value), want))
	case SequencingProps:
		return verdict(sameOrder(r.Order, v.Answer))
	case MatchingProps:
		return verdict(matchedByID(r.Matches, v.Pairs))
	}
	return StatusUnverifiable
}

func verdict(ok bool) Status {
	if ok {
		return StatusCorrect
	}
	return StatusIncorrect
}

func sameSet(got, want []string) bool {
	if len(want) == 0 {
		return false
	}
	w := make(map[string]struct{}, len(want))
	for _, s := range want {
		w[s] = struct{}{}
	}
	g := make(map[string]struct{}, len(got))
	for _, s := range got {
		if _, ok := w[s]; !ok {
			return false
		}
		g[s] = struct{}{}
	}
	return len(g) == len(w)
}

func sameOrder(got, want []string) bool {
	if len(want) == 0 || len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func matchedByID(matches map[string]string, pairs []MatchPair) bool {
	if len(pairs) == 0 || len(matches) != len(pairs) {
		return false
	}
	for _, p := range pairs {
		if matches[p.ID] != p.ID {
			return false
		}
	}
	return true
}

// Canonical returns the response that evaluates correct for p, used to pre-fill components on
// pages the learner already completed. Display props yield an empty response.
func Canonical(p Props) Response {
	switch v := p.(type) {
	case TrueFalseProps:
		if v.Answer {
			return Response{Value: "true"}
		}
		return Response{Value: "false"}
	case ChooseOneProps:
		return Response{Value: v.Answer}
	case MultipleChoiceProps:
		return Response{Selected: append([]string(nil), v.Answer...)}
	case SelectImageProps:
		return Response{Value: v.Answer}
	case FillInTheBlanksProps:
		return Response{Value: v.Answer}
	case SequencingProps:
		return Response{Order: append([]string(nil), v.Answer...)}
	case MatchingProps:
		m := make(map[string]string, len(v.Pairs))
		for _, pair := range v.Pairs {
			m[pair.ID] = pair.ID
		}
		return Response{Matches: m}
	}
	return Response{}
}
