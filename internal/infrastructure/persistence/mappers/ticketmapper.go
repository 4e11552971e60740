package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                t.ID(),
		CitizenName:       t.CitizenName(),
		CitizenPhone:      t.CitizenPhone(),
		CitizenNationalID: t.CitizenNationalID(),
		TicketType:        t.TicketType(),
		Summary:           t.Summary(),
		Description:       t.Description(),
		Priority:          t.Priority().String(),
		Status:            t.Status().String(),
		DepartmentID:      t.DepartmentID(),
		MediaURL:          t.MediaURL(),
		Latitude:          t.Latitude(),
		Longitude:         t.Longitude(),
		Location:          t.Location(),
		Source:            t.Source(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
	if t.AssignedTo() != nil {
		s := t.AssignedTo().String()
		model.AssignedTo = &s
	}
	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	// Historical rows may still carry the retired "new" status.
	status, err := ticket.NormalizeStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status %q: %w", model.Status, err)
	}

	var assignedTo *uuid.UUID
	if model.AssignedTo != nil && *model.AssignedTo != "" {
		id, err := uuid.Parse(*model.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("invalid stored assignee id %q: %w", *model.AssignedTo, err)
		}
		assignedTo = &id
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.CitizenName,
		model.CitizenPhone,
		model.CitizenNationalID,
		model.TicketType,
		model.Summary,
		model.Description,
		ticket.ParsePriority(model.Priority),
		status,
		model.DepartmentID,
		assignedTo,
		model.MediaURL,
		model.Latitude,
		model.Longitude,
		model.Location,
		model.Source,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
