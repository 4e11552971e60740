package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/infrastructure/persistence/mappers"
	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
)

// AuditLogRepository persists the append-only audit trail. There are no
// update or delete paths on purpose.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	if entry.ID() == 0 {
		if err := entry.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *AuditLogRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*audit.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.AuditLogModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.AuditLogModel
	query := tx.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent audit entries: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *AuditLogRepository) toDomainList(modelList []models.AuditLogModel) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
