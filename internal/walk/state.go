// Package walk holds the per-call traversal state of the descriptor builder.
package walk

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// State tracks the JSON Pointer of the descriptor under construction, the
// nesting depth, and which lazy nodes are currently being expanded.
// A State belongs to exactly one call and is not safe for concurrent use.
type State struct {
	parts    []string
	maxDepth int
	active   mapset.Set[any]
}

// New returns a State. maxDepth <= 0 disables the depth bound.
func New(maxDepth int) *State {
	return &State{maxDepth: maxDepth, active: mapset.NewThreadUnsafeSet[any]()}
}

// Push appends a raw path segment. It reports false when the resulting depth
// exceeds the configured bound; the segment is pushed either way so that the
// caller can render the offending path before calling Pop.
func (s *State) Push(seg string) bool {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1")
	s.parts = append(s.parts, esc)
	return s.maxDepth <= 0 || len(s.parts) <= s.maxDepth
}

// Pop removes the last segment.
func (s *State) Pop() {
	if len(s.parts) > 0 {
		s.parts = s.parts[:len(s.parts)-1]
	}
}

// Depth returns the number of segments below the root.
func (s *State) Depth() int { return len(s.parts) }

// Pointer renders the current location as a JSON Pointer ("/" for the root).
func (s *State) Pointer() string {
	if len(s.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(s.parts, "/")
}

// EnterLazy marks key as being expanded. It returns false when key is already
// being expanded higher up the current branch, which means the graph is cyclic.
func (s *State) EnterLazy(key any) bool {
	return s.active.Add(key)
}

// LeaveLazy clears the mark set by EnterLazy.
func (s *State) LeaveLazy(key any) {
	s.active.Remove(key)
}
