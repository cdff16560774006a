package skemadesc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedKind reports a node whose kind has no descriptor rule. It
	// usually means the schema graph was produced by a newer node vocabulary.
	ErrUnrecognizedKind = errors.New("skemadesc: unrecognized schema kind")
	// ErrCyclicSchema reports a lazy node that resolves back into itself while
	// it is still being expanded. Only identity cycles (the same *schema.Lazy
	// reached again) are caught.
	ErrCyclicSchema = errors.New("skemadesc: cyclic schema")
	// ErrMaxDepth reports nesting deeper than Options.MaxDepth.
	ErrMaxDepth = errors.New("skemadesc: max depth exceeded")
)

// Error locates a serialization failure inside the descriptor being built.
type Error struct {
	Path string // JSON Pointer into the descriptor (for example: /properties/tags/element).
	Kind string // Kind name of the offending node, or its Go type when unknown.
	Err  error  // One of the sentinel errors above.
}

func (e *Error) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%v at %s", e.Err, e.Path)
	}
	return fmt.Sprintf("%v at %s (%s)", e.Err, e.Path, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
