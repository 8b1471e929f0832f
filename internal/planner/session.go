package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Step is where a session is in the planner flow.
type Step int

const (
	// StepInput collects the space and preferences.
	StepInput Step = iota
	// StepResults shows recommendations for the current form.
	StepResults
)

var stepNames = map[Step]string{
	StepInput:   "input",
	StepResults: "results",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	n, ok := stepNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown step %d", int(s))
	}
	return []byte(n), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	for k, v := range stepNames {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", b)
}

var (
	ErrNotFound          = errors.New("session not found")
	ErrCannotSubmit      = errors.New("form cannot be submitted")
	ErrInvalidTransition = errors.New("invalid step transition")
)

// ValidationError carries the per-field problems that blocked a submit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrCannotSubmit, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrCannotSubmit }

// Session is one user's pass through the planner. Recommendations are not
// stored; they are derived from Form whenever the session is viewed.
type Session struct {
	ID        string    `json:"id"`
	Step      Step      `json:"step"`
	Form      Form      `json:"form"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Edit applies p in any step. Editing while results are shown changes the
// results on the next view.
func (s *Session) Edit(p FormPatch, now time.Time) {
	s.Form = s.Form.Apply(p)
	s.UpdatedAt = now
}

// Submit moves input to results once the form validates.
func (s *Session) Submit(now time.Time) error {
	if s.Step != StepInput {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, s.Step)
	}
	if errs := s.Form.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	s.Step = StepResults
	s.UpdatedAt = now
	return nil
}

// Reset returns to input, keeping what was typed.
func (s *Session) Reset(now time.Time) error {
	if s.Step != StepResults {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, s.Step)
	}
	s.Step = StepInput
	s.UpdatedAt = now
	return nil
}
