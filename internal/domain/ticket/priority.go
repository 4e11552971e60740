package ticket

import "fmt"

type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var validPriorities = map[Priority]bool{
	PriorityNormal:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid ticket priority: %s", s)
	}
	return p, nil
}

// ParsePriority maps arbitrary stored input to a valid priority, falling back
// to normal rather than rejecting the row.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return PriorityNormal
}
