package exercise

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Decode validates raw props against the schema for componentType and returns the typed payload.
// Errors wrap ErrUnknownComponentType or ErrMalformedProps.
func Decode(componentType string, raw []byte) (Props, error) {
	k, err := ParseKind(componentType)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}
	if err := validateShape(k, raw); err != nil {
		return nil, err
	}

	switch k {
	case PlainText:
		return decodeInto[PlainTextProps](k, raw)
	case Image:
		return decodeInto[ImageProps](k, raw)
	case Video:
		return decodeInto[VideoProps](k, raw)
	case Divider:
		return DividerProps{}, nil
	case ParentTeacherTip:
		return decodeInto[ParentTeacherTipProps](k, raw)
	case TrueFalse:
		return decodeTrueFalse(raw)
	case ChooseOne:
		p, err := decodeInto[ChooseOneProps](k, raw)
		if err != nil {
			return nil, err
		}
		if !containsOption(p.Options, p.Answer) {
			return nil, malformed(k, fmt.Sprintf("answer %q is not one of the options", p.Answer))
		}
		return p, nil
	case MultipleChoice:
		p, err := decodeInto[MultipleChoiceProps](k, raw)
		if err != nil {
			return nil, err
		}
		for _, a := range p.Answer {
			if !containsOption(p.Options, a) {
				return nil, malformed(k, fmt.Sprintf("answer %q is not one of the options", a))
			}
		}
		return p, nil
	case SelectImage:
		p, err := decodeInto[SelectImageProps](k, raw)
		if err != nil {
			return nil, err
		}
		for _, img := range p.Images {
			if img.Src == p.Answer {
				return p, nil
			}
		}
		return nil, malformed(k, fmt.Sprintf("answer %q is not one of the images", p.Answer))
	case FillInTheBlanks:
		return decodeInto[FillInTheBlanksProps](k, raw)
	case Sequencing:
		p, err := decodeInto[SequencingProps](k, raw)
		if err != nil {
			return nil, err
		}
		if err := checkPermutation(p); err != nil {
			return nil, err
		}
		return p, nil
	case Matching:
		p, err := decodeInto[MatchingProps](k, raw)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{}, len(p.Pairs))
		for _, pair := range p.Pairs {
			if _, dup := seen[pair.ID]; dup {
				return nil, malformed(k, fmt.Sprintf("duplicate pair id %q", pair.ID))
			}
			seen[pair.ID] = struct{}{}
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownComponentType, componentType)
}

func decodeInto[T Props](k Kind, raw []byte) (T, error) {
	var v T
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return v, malformed(k, err.Error())
	}
	return v, nil
}

// decodeTrueFalse accepts the answer either as a JSON boolean or as the strings "true"/"false".
func decodeTrueFalse(raw []byte) (Props, error) {
	var wire struct {
		Statement string      `json:"statement"`
		Answer    interface{} `json:"answer"`
	}
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return nil, malformed(TrueFalse, err.Error())
	}
	p := TrueFalseProps{Statement: wire.Statement}
	switch a := wire.Answer.(type) {
	case bool:
		p.Answer = a
	case string:
		b, ok := parseBool(a)
		if !ok {
			return nil, malformed(TrueFalse, fmt.Sprintf("answer %q is not a boolean", a))
		}
		p.Answer = b
	default:
		return nil, malformed(TrueFalse, "answer is not a boolean")
	}
	return p, nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func containsOption(opts []Option, text string) bool {
	for _, o := range opts {
		if o.Text == text {
			return true
		}
	}
	return false
}

func checkPermutation(p SequencingProps) error {
	if len(p.Answer) != len(p.Items) {
		return malformed(Sequencing, fmt.Sprintf("answer has %d ids for %d items", len(p.Answer), len(p.Items)))
	}
	ids := make(map[string]struct{}, len(p.Items))
	for _, it := range p.Items {
		ids[it.ID] = struct{}{}
	}
	if len(ids) != len(p.Items) {
		return malformed(Sequencing, "item ids are not unique")
	}
	for _, id := range p.Answer {
		if _, ok := ids[id]; !ok {
			return malformed(Sequencing, fmt.Sprintf("answer references unknown item %q", id))
		}
	}
	return nil
}
