package exercise

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const (
	nonEmptyString = `{"type": "string", "minLength": 1}`
	optionList     = `{"type": "array", "minItems": 1, "items": {"type": "object", "required": ["text"], "properties": {"text": ` + nonEmptyString + `}}}`
)

var schemaSources = map[Kind]string{
	PlainText: `{"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}}`,
	Image:     `{"type": "object", "required": ["src"], "properties": {"src": ` + nonEmptyString + `, "alt": {"type": "string"}}}`,
	Video:     `{"type": "object", "required": ["videoId"], "properties": {"videoId": ` + nonEmptyString + `}}`,
	Divider:   `{"type": "object"}`,
	ParentTeacherTip: `{"type": "object", "required": ["tip"], "properties": {"tip": {"type": "string"}}}`,

	TrueFalse: `{"type": "object", "required": ["statement", "answer"], "properties": {
		"statement": {"type": "string"},
		"answer": {"oneOf": [{"type": "boolean"}, {"type": "string", "enum": ["true", "false"]}]}}}`,
	ChooseOne: `{"type": "object", "required": ["options", "answer"], "properties": {
		"question": {"type": "string"},
		"options": ` + optionList + `,
		"answer": ` + nonEmptyString + `}}`,
	MultipleChoice: `{"type": "object", "required": ["options", "answer"], "properties": {
		"question": {"type": "string"},
		"options": ` + optionList + `,
		"answer": {"type": "array", "minItems": 1, "items": ` + nonEmptyString + `}}}`,
	SelectImage: `{"type": "object", "required": ["images", "answer"], "properties": {
		"question": {"type": "string"},
		"images": {"type": "array", "minItems": 1, "items": {"type": "object", "required": ["src"], "properties": {"src": ` + nonEmptyString + `, "alt": {"type": "string"}}}},
		"answer": ` + nonEmptyString + `}}`,
	FillInTheBlanks: `{"type": "object", "required": ["text", "answer"], "properties": {
		"text": {"type": "string"},
		"answer": {"type": "string", "pattern": "\\S"}}}`,
	Sequencing: `{"type": "object", "required": ["items", "answer"], "properties": {
		"title": {"type": "string"},
		"items": {"type": "array", "minItems": 1, "items": {"type": "object", "required": ["id", "text"], "properties": {"id": ` + nonEmptyString + `, "text": {"type": "string"}}}},
		"answer": {"type": "array", "minItems": 1, "uniqueItems": true, "items": ` + nonEmptyString + `}}}`,
	Matching: `{"type": "object", "required": ["pairs"], "properties": {
		"title": {"type": "string"},
		"pairs": {"type": "array", "minItems": 1, "items": {"type": "object", "required": ["id", "term", "definition"], "properties": {"id": ` + nonEmptyString + `, "term": {"type": "string"}, "definition": {"type": "string"}}}}}}`,
}

var schemas = compileSchemas()

func compileSchemas() map[Kind]*gojsonschema.Schema {
	out := make(map[Kind]*gojsonschema.Schema, len(schemaSources))
	for k, src := range schemaSources {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			panic(fmt.Sprintf("exercise: compile %s schema: %v", k, err))
		}
		out[k] = s
	}
	return out
}

// validateShape checks raw props against the JSON schema registered for k.
func validateShape(k Kind, raw []byte) error {
	s, ok := schemas[k]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponentType, k)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return malformed(k, err.Error())
	}
	if res.Valid() {
		return nil
	}
	issues := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		issues = append(issues, e.String())
	}
	return malformed(k, issues...)
}
