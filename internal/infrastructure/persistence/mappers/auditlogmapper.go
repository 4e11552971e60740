package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between audit entries and persistence models.
type AuditLogMapper interface {
	ToModel(e *audit.Entry) *models.AuditLogModel
	ToDomain(model *models.AuditLogModel) (*audit.Entry, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(e *audit.Entry) *models.AuditLogModel {
	model := &models.AuditLogModel{
		ID:          e.ID(),
		UserID:      e.UserID().String(),
		ActionType:  e.ActionType().String(),
		TicketID:    e.TicketID(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt(),
	}
	if meta := e.Metadata(); len(meta) > 0 {
		if raw, err := json.Marshal(meta); err == nil {
			model.Metadata = raw
		}
	}
	return model
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored user id %q: %w", model.UserID, err)
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("invalid stored metadata: %w", err)
		}
	}

	return audit.ReconstructEntry(
		model.ID,
		userID,
		audit.ActionType(model.ActionType),
		model.TicketID,
		model.Description,
		metadata,
		model.CreatedAt,
	), nil
}
