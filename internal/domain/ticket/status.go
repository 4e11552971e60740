package ticket

import "fmt"

type Status string

const (
	// StatusOpen is the canonical unstarted state. Historical rows may carry
	// the legacy value "new"; NormalizeStatus folds it into open at the store
	// boundary.
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusCancelled  Status = "cancelled"

	// legacyStatusNew existed alongside open with identical meaning.
	legacyStatusNew = "new"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusCancelled:  true,
}

var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusResolved,
		StatusCancelled,
	},
	StatusResolved:  {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// IsActive reports whether the ticket still needs work.
func (s Status) IsActive() bool {
	return s == StatusOpen || s == StatusInProgress
}

// NewStatus parses an exact status value from API input.
func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}

// NormalizeStatus parses a stored status value, folding the legacy "new"
// value into open so both historical entry points read identically.
func NormalizeStatus(s string) (Status, error) {
	if s == legacyStatusNew {
		return StatusOpen, nil
	}
	return NewStatus(s)
}
