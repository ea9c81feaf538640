package exercise

import (
	"errors"
	"testing"
)

func mustDecode(t *testing.T, kind Kind, raw string) Props {
	t.Helper()
	p, err := Decode(string(kind), []byte(raw))
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", kind, err)
	}
	return p
}

func TestEvaluate_MultipleChoiceIsSetEquality(t *testing.T) {
	p := mustDecode(t, MultipleChoice, `{"question":"q","options":[{"text":"A"},{"text":"B"},{"text":"C"}],"answer":["C","A"]}`)

	tests := []struct {
		name     string
		selected []string
		want     Status
	}{
		{"same-members-other-order", []string{"A", "C"}, StatusCorrect},
		{"subset", []string{"A"}, StatusIncorrect},
		{"superset", []string{"A", "B", "C"}, StatusIncorrect},
		{"nothing", nil, StatusIncorrect},
		{"duplicate-selection", []string{"A", "A", "C"}, StatusCorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(p, Response{Selected: tt.selected}); got != tt.want {
				t.Errorf("Evaluate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MatchingPairsByIDNotPosition(t *testing.T) {
	p := mustDecode(t, Matching, `{"title":"m","pairs":[
		{"id":"p1","term":"CPU","definition":"processor"},
		{"id":"p2","term":"RAM","definition":"memory"},
		{"id":"p3","term":"SSD","definition":"storage"}]}`)

	// Definitions shown as p3, p1, p2; each receives the term with its own id.
	correct := map[string]string{"p3": "p3", "p1": "p1", "p2": "p2"}
	if got := Evaluate(p, Response{Matches: correct}); got != StatusCorrect {
		t.Fatalf("expected correct, got %s", got)
	}

	swapped := map[string]string{"p1": "p2", "p2": "p1", "p3": "p3"}
	if got := Evaluate(p, Response{Matches: swapped}); got != StatusIncorrect {
		t.Fatalf("expected incorrect for swapped terms, got %s", got)
	}

	partial := map[string]string{"p1": "p1", "p2": "p2"}
	if got := Evaluate(p, Response{Matches: partial}); got != StatusIncorrect {
		t.Fatalf("expected incorrect for unfinished matching, got %s", got)
	}
}

func TestEvaluate_FillInTheBlanksTrimsAndFoldsCase(t *testing.T) {
	p := mustDecode(t, FillInTheBlanks, `{"text":"The capital of France is ___.","answer":"Paris"}`)

	for _, in := range []string{"Paris", "paris ", "  PARIS"} {
		if got := Evaluate(p, Response{Value: in}); got != StatusCorrect {
			t.Errorf("Evaluate(%q) = %s, want correct", in, got)
		}
	}
	for _, in := range []string{"", "Pari", "London"} {
		if got := Evaluate(p, Response{Value: in}); got != StatusIncorrect {
			t.Errorf("Evaluate(%q) = %s, want incorrect", in, got)
		}
	}
}

func TestEvaluate_TrueFalseAcceptsStringOrBoolAnswer(t *testing.T) {
	fromString := mustDecode(t, TrueFalse, `{"statement":"s","answer":"true"}`)
	fromBool := mustDecode(t, TrueFalse, `{"statement":"s","answer":false}`)

	if got := Evaluate(fromString, Response{Value: "true"}); got != StatusCorrect {
		t.Fatalf("expected correct, got %s", got)
	}
	if got := Evaluate(fromString, Response{Value: "false"}); got != StatusIncorrect {
		t.Fatalf("expected incorrect, got %s", got)
	}
	if got := Evaluate(fromBool, Response{Value: "false"}); got != StatusCorrect {
		t.Fatalf("expected correct, got %s", got)
	}
	if got := Evaluate(fromBool, Response{}); got != StatusIncorrect {
		t.Fatalf("expected unanswered to be incorrect, got %s", got)
	}
}

func TestEvaluate_SequencingComparesElementWise(t *testing.T) {
	p := mustDecode(t, Sequencing, `{"title":"order","items":[{"id":"a","text":"1"},{"id":"b","text":"2"},{"id":"c","text":"3"}],"answer":["a","b","c"]}`)

	if got := Evaluate(p, Response{Order: []string{"a", "b", "c"}}); got != StatusCorrect {
		t.Fatalf("expected correct, got %s", got)
	}
	if got := Evaluate(p, Response{Order: []string{"b", "a", "c"}}); got != StatusIncorrect {
		t.Fatalf("expected incorrect, got %s", got)
	}
	if got := Evaluate(p, Response{Order: []string{"a", "b"}}); got != StatusIncorrect {
		t.Fatalf("expected incorrect for short order, got %s", got)
	}
}

func TestEvaluate_SingleSelectionKinds(t *testing.T) {
	choose := mustDecode(t, ChooseOne, `{"question":"q","options":[{"text":"x"},{"text":"y"}],"answer":"y"}`)
	image := mustDecode(t, SelectImage, `{"question":"q","images":[{"src":"a.png"},{"src":"b.png"}],"answer":"a.png"}`)

	if Evaluate(choose, Response{Value: "y"}) != StatusCorrect || Evaluate(choose, Response{Value: "x"}) != StatusIncorrect {
		t.Fatalf("ChooseOne predicate mismatch")
	}
	if Evaluate(image, Response{Value: "a.png"}) != StatusCorrect || Evaluate(image, Response{Value: "b.png"}) != StatusIncorrect {
		t.Fatalf("SelectImage predicate mismatch")
	}
}

func TestEvaluate_DisplayKindsAreVacuous(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		raw  string
	}{
		{PlainText, `{"text":"hello"}`},
		{Image, `{"src":"a.png","alt":"a"}`},
		{Video, `{"videoId":"p2ERd_aP9_E"}`},
		{Divider, ``},
		{ParentTeacherTip, `{"tip":"discuss at home"}`},
	} {
		p := mustDecode(t, tc.kind, tc.raw)
		if got := Evaluate(p, Response{}); got != StatusDisplay {
			t.Errorf("%s: got %s, want display", tc.kind, got)
		}
	}
}

func TestCanonicalEvaluatesCorrect(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		raw  string
	}{
		{TrueFalse, `{"statement":"s","answer":"false"}`},
		{ChooseOne, `{"options":[{"text":"x"}],"answer":"x"}`},
		{MultipleChoice, `{"options":[{"text":"x"},{"text":"y"}],"answer":["y","x"]}`},
		{SelectImage, `{"images":[{"src":"a.png"}],"answer":"a.png"}`},
		{FillInTheBlanks, `{"text":"___","answer":"go"}`},
		{Sequencing, `{"items":[{"id":"1","text":"a"},{"id":"2","text":"b"}],"answer":["2","1"]}`},
		{Matching, `{"pairs":[{"id":"x","term":"t","definition":"d"}]}`},
	} {
		p := mustDecode(t, tc.kind, tc.raw)
		if got := Evaluate(p, Canonical(p)); got != StatusCorrect {
			t.Errorf("%s: canonical response evaluated %s", tc.kind, got)
		}
	}
}

func TestDecode_MalformedPropsFailClosed(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
	}{
		{"choose-one-missing-answer", ChooseOne, `{"question":"q","options":[{"text":"x"}]}`},
		{"choose-one-answer-not-an-option", ChooseOne, `{"options":[{"text":"x"}],"answer":"z"}`},
		{"multiple-choice-empty-answer", MultipleChoice, `{"options":[{"text":"x"}],"answer":[]}`},
		{"true-false-garbage", TrueFalse, `{"statement":"s","answer":"maybe"}`},
		{"fill-blank-whitespace-answer", FillInTheBlanks, `{"text":"___","answer":"   "}`},
		{"sequencing-unknown-id", Sequencing, `{"items":[{"id":"a","text":"1"}],"answer":["b"]}`},
		{"matching-duplicate-id", Matching, `{"pairs":[{"id":"a","term":"t","definition":"d"},{"id":"a","term":"u","definition":"e"}]}`},
		{"not-json", SelectImage, `{"images":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(string(tt.kind), []byte(tt.raw))
			if !errors.Is(err, ErrMalformedProps) {
				t.Fatalf("expected ErrMalformedProps, got %v", err)
			}

			it := NewItem(string(tt.kind), 0, []byte(tt.raw))
			if got := it.Evaluate(Canonical(it.Props)); got != StatusUnverifiable {
				t.Fatalf("expected unverifiable, got %s", got)
			}
			res := CheckPage([]Item{it}, nil)
			if res.Satisfied || !res.Unverifiable() {
				t.Fatalf("page with corrupt component must not be satisfied: %+v", res)
			}
		})
	}
}

func TestDecode_UnknownComponentType(t *testing.T) {
	_, err := Decode("Hologram", []byte(`{}`))
	if !errors.Is(err, ErrUnknownComponentType) {
		t.Fatalf("expected ErrUnknownComponentType, got %v", err)
	}
	it := NewItem("Hologram", 0, []byte(`{}`))
	if !it.Interactive() {
		t.Fatalf("unknown kinds must gate the page")
	}
}

func TestCheckPage_RequiresEveryInteractiveItem(t *testing.T) {
	items := []Item{
		NewItem("PlainText", 0, []byte(`{"text":"intro"}`)),
		NewItem("TrueFalse", 1, []byte(`{"statement":"s","answer":"true"}`)),
		NewItem("FillInTheBlanks", 2, []byte(`{"text":"___","answer":"Paris"}`)),
	}
	if !HasInteractive(items) {
		t.Fatalf("expected interactive page")
	}

	partial := CheckPage(items, map[int]Response{1: {Value: "true"}, 2: {Value: "Rome"}})
	if partial.Satisfied {
		t.Fatalf("one wrong answer must fail the page")
	}
	if partial.Statuses[0] != StatusDisplay || partial.Statuses[1] != StatusCorrect || partial.Statuses[2] != StatusIncorrect {
		t.Fatalf("unexpected statuses: %v", partial.Statuses)
	}

	full := CheckPage(items, map[int]Response{1: {Value: "true"}, 2: {Value: "paris"}})
	if !full.Satisfied || full.Unverifiable() {
		t.Fatalf("expected satisfied page, got %+v", full)
	}
}

func TestCorruptDisplayItemDoesNotGate(t *testing.T) {
	it := NewItem("Image", 0, []byte(`{"alt":"missing src"}`))
	if it.Err == nil {
		t.Fatalf("expected decode error")
	}
	if it.Interactive() {
		t.Fatalf("display kinds never gate")
	}
	if got := it.Evaluate(Response{}); got != StatusDisplay {
		t.Fatalf("got %s, want display", got)
	}
}
