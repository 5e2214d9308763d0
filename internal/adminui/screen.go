// Package adminui is the terminal admin client: an HTTP client for the
// catalog API, a per-screen state machine and the bubbletea program that
// renders it.
package adminui

import (
	"errors"
	"fmt"
	"strings"
)

type State int

const (
	StateLoading State = iota
	StateList
	StateEmpty
	StateLoadFailed
	StateFormOpen
	StateSubmitting
	StateDeleteConfirm
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateList:
		return "list"
	case StateEmpty:
		return "empty"
	case StateLoadFailed:
		return "load-failed"
	case StateFormOpen:
		return "form-open"
	case StateSubmitting:
		return "submitting"
	case StateDeleteConfirm:
		return "delete-confirm"
	case StateDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// FormValues are the raw text inputs of an open form keyed by field name.
type FormValues map[string]string

func (v FormValues) clone() FormValues {
	out := make(FormValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

var (
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrBusy              = errors.New("a request is already in flight")
)

// MissingFieldsError lists required form fields left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return strings.Join(e.Fields, ", ") + " required"
}

// Screen is the state machine behind one management screen. It holds no I/O:
// callers perform the request a transition asks for and report the outcome.
// At most one mutation is in flight per screen.
type Screen[T any] struct {
	state    State
	items    []T
	loadErr  error
	notice   Notice
	required []string

	form    FormValues
	editing *T
	target  *T
}

// NewScreen starts in Loading; required names the form fields checked before
// submit.
func NewScreen[T any](required ...string) *Screen[T] {
	return &Screen[T]{state: StateLoading, required: required}
}

func (s *Screen[T]) State() State { return s.state }
func (s *Screen[T]) Items() []T { return s.items }
func (s *Screen[T]) LoadError() error { return s.loadErr }
func (s *Screen[T]) Notice() Notice { return s.notice }
func (s *Screen[T]) Form() FormValues { return s.form }
func (s *Screen[T]) ClearNotice() { s.notice = Notice{} }
func (s *Screen[T]) Busy() bool { return s.state == StateSubmitting || s.state == StateDeleting }
func (s *Screen[T]) Required() []string { return s.required }

// Editing reports the entity the open form edits; false means create.
func (s *Screen[T]) Editing() (T, bool) {
	if s.editing == nil {
		var zero T
		return zero, false
	}
	return *s.editing, true
}

// DeleteTarget is the entity awaiting or undergoing deletion.
func (s *Screen[T]) DeleteTarget() (T, bool) {
	if s.target == nil {
		var zero T
		return zero, false
	}
	return *s.target, true
}

// Loaded settles a fetch. Notices from the mutation that triggered the
// re-fetch survive.
func (s *Screen[T]) Loaded(items []T) error {
	if s.state != StateLoading {
		return ErrInvalidTransition
	}
	s.items = items
	s.loadErr = nil
	if len(items) == 0 {
		s.state = StateEmpty
	} else {
		s.state = StateList
	}
	return nil
}

func (s *Screen[T]) LoadFailed(err error) error {
	if s.state != StateLoading {
		return ErrInvalidTransition
	}
	s.loadErr = err
	s.state = StateLoadFailed
	return nil
}

// Reload re-fetches from any resting state.
func (s *Screen[T]) Reload() error {
	switch s.state {
	case StateList, StateEmpty, StateLoadFailed:
		s.state = StateLoading
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (s *Screen[T]) OpenCreate(initial FormValues) error {
	if s.state != StateList && s.state != StateEmpty {
		return ErrInvalidTransition
	}
	s.editing = nil
	s.form = initial.clone()
	s.notice = Notice{}
	s.state = StateFormOpen
	return nil
}

// OpenEdit seeds the form from item.
func (s *Screen[T]) OpenEdit(item T, values FormValues) error {
	if s.state != StateList {
		return ErrInvalidTransition
	}
	s.editing = &item
	s.form = values.clone()
	s.notice = Notice{}
	s.state = StateFormOpen
	return nil
}

func (s *Screen[T]) SetField(name, value string) error {
	if s.state != StateFormOpen {
		return ErrInvalidTransition
	}
	s.form[name] = value
	return nil
}

func (s *Screen[T]) CancelForm() error {
	if s.state != StateFormOpen {
		return ErrInvalidTransition
	}
	s.closeForm()
	return nil
}

// Submit validates required fields and moves to Submitting, returning the
// values to send. A second submit while one is in flight returns ErrBusy.
func (s *Screen[T]) Submit() (FormValues, error) {
	switch s.state {
	case StateSubmitting:
		return nil, ErrBusy
	case StateFormOpen:
	default:
		return nil, ErrInvalidTransition
	}

	var missing []string
	for _, f := range s.required {
		if strings.TrimSpace(s.form[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		err := &MissingFieldsError{Fields: missing}
		s.notice = Notice{Kind: NoticeError, Text: err.Error()}
		return nil, err
	}

	s.notice = Notice{}
	s.state = StateSubmitting
	return s.form.clone(), nil
}

// SubmitSucceeded closes the form and asks for a re-fetch.
func (s *Screen[T]) SubmitSucceeded(message string) error {
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.closeForm()
	s.notice = Notice{Kind: NoticeSuccess, Text: message}
	s.state = StateLoading
	return nil
}

// SubmitFailed keeps the form open with what the user typed.
func (s *Screen[T]) SubmitFailed(err error) error {
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.notice = Notice{Kind: NoticeError, Text: err.Error()}
	s.state = StateFormOpen
	return nil
}

func (s *Screen[T]) ConfirmDelete(item T) error {
	if s.state != StateList {
		return ErrInvalidTransition
	}
	s.target = &item
	s.notice = Notice{}
	s.state = StateDeleteConfirm
	return nil
}

func (s *Screen[T]) DismissDelete() error {
	if s.state != StateDeleteConfirm {
		return ErrInvalidTransition
	}
	s.target = nil
	s.state = StateList
	return nil
}

// Delete moves to Deleting and returns the entity to remove.
func (s *Screen[T]) Delete() (T, error) {
	var zero T
	switch s.state {
	case StateDeleting:
		return zero, ErrBusy
	case StateDeleteConfirm:
	default:
		return zero, ErrInvalidTransition
	}
	s.notice = Notice{}
	s.state = StateDeleting
	return *s.target, nil
}

func (s *Screen[T]) DeleteSucceeded(message string) error {
	if s.state != StateDeleting {
		return ErrInvalidTransition
	}
	s.target = nil
	s.notice = Notice{Kind: NoticeSuccess, Text: message}
	s.state = StateLoading
	return nil
}

// DeleteFailed leaves the dialog open so the user can retry or dismiss.
func (s *Screen[T]) DeleteFailed(err error) error {
	if s.state != StateDeleting {
		return ErrInvalidTransition
	}
	s.notice = Notice{Kind: NoticeError, Text: err.Error()}
	s.state = StateDeleteConfirm
	return nil
}

func (s *Screen[T]) closeForm() {
	s.form = nil
	s.editing = nil
	if len(s.items) == 0 {
		s.state = StateEmpty
	} else {
		s.state = StateList
	}
}
