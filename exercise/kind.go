package exercise

import "fmt"

// Kind is the component_type tag stored with every component.
type Kind string

const (
	PlainText        Kind = "PlainText"
	Image            Kind = "Image"
	Video            Kind = "Video"
	Divider          Kind = "Divider"
	ParentTeacherTip Kind = "ParentTeacherTip"

	TrueFalse       Kind = "TrueFalse"
	ChooseOne       Kind = "ChooseOne"
	MultipleChoice  Kind = "MultipleChoice"
	SelectImage     Kind = "SelectImage"
	FillInTheBlanks Kind = "FillInTheBlanks"
	Sequencing      Kind = "Sequencing"
	Matching        Kind = "Matching"
)

var kinds = []Kind{
	PlainText, Image, Video, Divider, ParentTeacherTip,
	TrueFalse, ChooseOne, MultipleChoice, SelectImage, FillInTheBlanks, Sequencing, Matching,
}

// Kinds returns every known component type in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComponentType, s)
}

// Interactive reports whether components of this kind carry an answer to check.
func (k Kind) Interactive() bool {
	switch k {
	case TrueFalse, ChooseOne, MultipleChoice, SelectImage, FillInTheBlanks, Sequencing, Matching:
		return true
	}
	return false
}

// Shuffled reports whether the presentation order of the kind's items is randomized per page entry.
func (k Kind) Shuffled() bool {
	return k == Sequencing || k == Matching
}
