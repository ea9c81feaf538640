package exercise

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownComponentType = errors.New("unknown component type")
	ErrMalformedProps       = errors.New("malformed component props")
)

// PropsError lists every schema violation found while decoding a component's props.
type PropsError struct {
	Kind   Kind
	Issues []string
}

func (e *PropsError) Error() string {
	return fmt.Sprintf("%s props: %s", e.Kind, strings.Join(e.Issues, "; "))
}

func (e *PropsError) Unwrap() error {
	return ErrMalformedProps
}

func malformed(k Kind, issues ...string) error {
	return &PropsError{Kind: k, Issues: issues}
}
