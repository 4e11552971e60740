package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/infrastructure/persistence/mappers"
	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
	"beyazmasa/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"created_at":   true,
	"status":       true,
	"priority":     true,
	"ticket_type":  true,
	"citizen_name": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if t.ID() == 0 {
		if err := t.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("CitizenName", "CitizenPhone", "CitizenNationalID", "TicketType",
			"Summary", "Description", "Priority", "Status", "DepartmentID",
			"AssignedTo", "MediaURL", "Latitude", "Longitude", "Location", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDAndPhone(ctx context.Context, id uint, phone string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND citizen_phone = ?", id, phone).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query, empty := r.applyScope(tx.Model(&models.TicketModel{}), filter.Scope)
	if empty {
		return []*ticket.Ticket{}, 0, nil
	}

	if filter.Status != nil {
		query = query.Where("status IN ?", statusQueryValues(*filter.Status))
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(citizen_name) LIKE ? OR LOWER(summary) LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy := "created_at"
	if allowedTicketOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var modelList []models.TicketModel
	if err := query.
		Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// applyScope narrows the query to the caller's view before any other filter
// touches it. The second return value marks an intentionally empty scope.
func (r *TicketRepository) applyScope(query *gorm.DB, scope ticket.ViewScope) (*gorm.DB, bool) {
	switch scope.Scope {
	case ticket.ScopeAll:
		return query, false
	case ticket.ScopeDepartment:
		return query.Where("department_id = ?", scope.DepartmentID), false
	default:
		return query, true
	}
}

func (r *TicketRepository) ListAssigned(ctx context.Context, assigneeID uuid.UUID) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketModel
	if err := tx.
		Where("assigned_to = ? AND status IN ?", assigneeID.String(),
			statusStrings([]ticket.Status{ticket.StatusOpen, ticket.StatusInProgress})).
		Order("CASE priority WHEN 'critical' THEN 0 WHEN 'high' THEN 1 ELSE 2 END, created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) CountAssigned(ctx context.Context, assigneeID uuid.UUID, statuses []ticket.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("assigned_to = ? AND status IN ?", assigneeID.String(), statusStrings(statuses)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assigned tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountScoped(ctx context.Context, scope ticket.ViewScope, statuses []ticket.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query, empty := r.applyScope(tx.Model(&models.TicketModel{}), scope)
	if empty {
		return 0, nil
	}
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) ListCreatedSince(ctx context.Context, scope ticket.ViewScope, since time.Time) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query, empty := r.applyScope(tx.Model(&models.TicketModel{}), scope)
	if empty {
		return []*ticket.Ticket{}, nil
	}

	var modelList []models.TicketModel
	if err := query.
		Where("created_at >= ?", since).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) ListResolvedSince(ctx context.Context, since time.Time) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketModel
	if err := tx.
		Where("status = ? AND updated_at >= ?", ticket.StatusResolved.String(), since).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list resolved tickets: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) ListGeolocated(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketModel
	query := tx.
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list geolocated tickets: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// statusStrings expands canonical statuses to their stored values. Rows
// written before the rename still carry "new" for open.
func statusStrings(statuses []ticket.Status) []string {
	out := make([]string, 0, len(statuses)+1)
	for _, s := range statuses {
		out = append(out, statusQueryValues(s)...)
	}
	return out
}

func statusQueryValues(s ticket.Status) []string {
	if s == ticket.StatusOpen {
		return []string{ticket.StatusOpen.String(), "new"}
	}
	return []string{s.String()}
}
