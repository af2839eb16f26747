package scraper

import (
	"fmt"
	"sync"
)

// IdleLabel is shown while no extraction is running
const IdleLabel = "Extract Items Info"

// Status is the enabled flag and label of the "Extract All Pages" control.
// Only the pagination driver changes it; observers are notified through OnChange.
type Status struct {
	mu       sync.Mutex
	enabled  bool
	label    string
	onChange func(enabled bool, label string)
}

// NewStatus creates an enabled Status with the idle label.
// onChange may be nil.
func NewStatus(onChange func(enabled bool, label string)) *Status {
	return &Status{
		enabled:  true,
		label:    IdleLabel,
		onChange: onChange,
	}
}

// Enabled reports whether the control can be used
func (s *Status) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Label returns the current label text
func (s *Status) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// Acquire disables the control and returns the function that restores it.
// The returned function must run on every exit path.
func (s *Status) Acquire() (release func()) {
	s.set(false, s.Label())
	return func() {
		s.set(true, IdleLabel)
	}
}

// SetProgress updates the label with the page being extracted
func (s *Status) SetProgress(page, lastPage int) {
	s.set(s.Enabled(), fmt.Sprintf("Extracting page %d/%d...", page, lastPage))
}

func (s *Status) set(enabled bool, label string) {
	s.mu.Lock()
	s.enabled = enabled
	s.label = label
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(enabled, label)
	}
}
