// Package session holds the interface list and selection owned by the UI
// event loop.
//
// A Session is not safe for concurrent use; it belongs to whichever goroutine
// runs the event loop and is passed explicitly to the code that needs it.
package session

import (
	"fmt"
	"strconv"
	"strings"
)

// NoPick marks the absence of a list selection.
const NoPick = -1

// SelectionError is returned when no interface can be resolved from the
// typed ordinal or the list pick.
type SelectionError struct {
	// Typed is the raw ordinal text the user entered, if any
	Typed string
	// Count is the number of interfaces displayed at the time
	Count int
}

func (e *SelectionError) Error() string {
	if e.Count == 0 {
		return "no wireless adapters available to select"
	}
	if e.Typed != "" {
		return fmt.Sprintf("invalid interface number %q: enter a number between 1 and %d or select one from the list", e.Typed, e.Count)
	}
	return "please select or enter a valid interface number"
}

// Session is the selection state for the currently displayed interface list.
type Session struct {
	interfaces []string
	typed      string
	picked     int
	generation int
}

// New returns an empty session.
func New() *Session {
	return &Session{picked: NoPick}
}

// SetInterfaces replaces the displayed list. Ordinals and picks referring to
// the previous list are discarded.
func (s *Session) SetInterfaces(names []string) {
	s.interfaces = append([]string(nil), names...)
	s.typed = ""
	s.picked = NoPick
	s.generation++
}

// Interfaces returns a copy of the displayed list.
func (s *Session) Interfaces() []string {
	return append([]string(nil), s.interfaces...)
}

// Len returns the number of displayed interfaces.
func (s *Session) Len() int {
	return len(s.interfaces)
}

// Generation counts how many times the list has been replaced.
func (s *Session) Generation() int {
	return s.generation
}

// SetTyped records the ordinal text as entered by the user.
func (s *Session) SetTyped(text string) {
	s.typed = text
}

// Typed returns the ordinal text as entered by the user.
func (s *Session) Typed() string {
	return s.typed
}

// Pick records a zero-based list selection and mirrors it into the typed
// ordinal. Out-of-range indexes clear the pick.
func (s *Session) Pick(index int) {
	if index < 0 || index >= len(s.interfaces) {
		s.picked = NoPick
		return
	}
	s.picked = index
	s.typed = strconv.Itoa(index + 1)
}

// Picked returns the zero-based list selection or NoPick.
func (s *Session) Picked() int {
	return s.picked
}

// Resolve returns the selected interface. A typed ordinal in [1, Len] wins;
// otherwise the list pick is used; otherwise a *SelectionError is returned.
func (s *Session) Resolve() (string, error) {
	typed := strings.TrimSpace(s.typed)
	if typed != "" {
		if n, err := strconv.Atoi(typed); err == nil && n >= 1 && n <= len(s.interfaces) {
			return s.interfaces[n-1], nil
		}
	}
	if s.picked >= 0 && s.picked < len(s.interfaces) {
		return s.interfaces[s.picked], nil
	}
	return "", &SelectionError{Typed: typed, Count: len(s.interfaces)}
}
