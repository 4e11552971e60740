// Package ticket holds the citizen complaint aggregate, its status machine and
// the access policy deciding which staff may see or act on a ticket.
package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	SourceWeb    = "web"
	SourceManual = "manual"
)

type Ticket struct {
	id                uint
	citizenName       string
	citizenPhone      string
	citizenNationalID *string
	ticketType        string
	summary           string
	description       string
	priority          Priority
	status            Status
	departmentID      *int
	assignedTo        *uuid.UUID
	mediaURL          *string
	latitude          *float64
	longitude         *float64
	location          *string
	source            string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewTicket creates a staff-entered ticket routed to a department.
func NewTicket(
	citizenName string,
	citizenPhone string,
	ticketType string,
	summary string,
	description string,
	priority Priority,
	departmentID *int,
) (*Ticket, error) {
	if len(citizenName) == 0 {
		return nil, fmt.Errorf("citizen name is required")
	}
	if len(citizenPhone) == 0 {
		return nil, fmt.Errorf("citizen phone is required")
	}
	if len(ticketType) == 0 {
		return nil, fmt.Errorf("ticket type is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Ticket{
		citizenName:  citizenName,
		citizenPhone: citizenPhone,
		ticketType:   ticketType,
		summary:      summary,
		description:  description,
		priority:     priority,
		status:       StatusOpen,
		departmentID: departmentID,
		source:       SourceManual,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewPublicTicket creates a citizen-submitted ticket. Status, priority and
// source are fixed here so no public input can influence them.
func NewPublicTicket(
	citizenName string,
	citizenPhone string,
	citizenNationalID *string,
	ticketType string,
	summary string,
	description string,
	latitude *float64,
	longitude *float64,
	mediaURL *string,
) (*Ticket, error) {
	if len(citizenName) == 0 {
		return nil, fmt.Errorf("citizen name is required")
	}
	if len(citizenPhone) == 0 {
		return nil, fmt.Errorf("citizen phone is required")
	}
	if len(ticketType) == 0 {
		return nil, fmt.Errorf("ticket type is required")
	}

	now := time.Now()
	return &Ticket{
		citizenName:       citizenName,
		citizenPhone:      citizenPhone,
		citizenNationalID: citizenNationalID,
		ticketType:        ticketType,
		summary:           summary,
		description:       description,
		priority:          PriorityNormal,
		status:            StatusOpen,
		latitude:          latitude,
		longitude:         longitude,
		mediaURL:          mediaURL,
		source:            SourceWeb,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	citizenName string,
	citizenPhone string,
	citizenNationalID *string,
	ticketType string,
	summary string,
	description string,
	priority Priority,
	status Status,
	departmentID *int,
	assignedTo *uuid.UUID,
	mediaURL *string,
	latitude *float64,
	longitude *float64,
	location *string,
	source string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:                id,
		citizenName:       citizenName,
		citizenPhone:      citizenPhone,
		citizenNationalID: citizenNationalID,
		ticketType:        ticketType,
		summary:           summary,
		description:       description,
		priority:          priority,
		status:            status,
		departmentID:      departmentID,
		assignedTo:        assignedTo,
		mediaURL:          mediaURL,
		latitude:          latitude,
		longitude:         longitude,
		location:          location,
		source:            source,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                    { return t.id }
func (t *Ticket) CitizenName() string         { return t.citizenName }
func (t *Ticket) CitizenPhone() string        { return t.citizenPhone }
func (t *Ticket) CitizenNationalID() *string  { return t.citizenNationalID }
func (t *Ticket) TicketType() string          { return t.ticketType }
func (t *Ticket) Summary() string             { return t.summary }
func (t *Ticket) Description() string         { return t.description }
func (t *Ticket) Priority() Priority          { return t.priority }
func (t *Ticket) Status() Status              { return t.status }
func (t *Ticket) DepartmentID() *int          { return t.departmentID }
func (t *Ticket) AssignedTo() *uuid.UUID      { return t.assignedTo }
func (t *Ticket) MediaURL() *string           { return t.mediaURL }
func (t *Ticket) Latitude() *float64          { return t.latitude }
func (t *Ticket) Longitude() *float64         { return t.longitude }
func (t *Ticket) Location() *string           { return t.location }
func (t *Ticket) Source() string              { return t.source }
func (t *Ticket) CreatedAt() time.Time        { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time        { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket through the status machine. Setting the same
// status again is a no-op; invalid transitions are rejected.
func (t *Ticket) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// AttachEvidence records the proof-of-work photo URL.
func (t *Ticket) AttachEvidence(url string) error {
	if len(url) == 0 {
		return fmt.Errorf("evidence URL cannot be empty")
	}
	t.mediaURL = &url
	t.updatedAt = time.Now()
	return nil
}

// AssignTo points the ticket at a staff member. Assignment is independent of
// status; an already resolved ticket can still be reassigned for follow-up.
func (t *Ticket) AssignTo(assigneeID uuid.UUID) error {
	if assigneeID == uuid.Nil {
		return fmt.Errorf("assignee ID cannot be empty")
	}
	t.assignedTo = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

// HasEvidence reports whether a proof photo is on file.
func (t *Ticket) HasEvidence() bool {
	return t.mediaURL != nil && *t.mediaURL != ""
}

// HasCoordinates reports whether the ticket is geolocated.
func (t *Ticket) HasCoordinates() bool {
	return t.latitude != nil && t.longitude != nil
}
