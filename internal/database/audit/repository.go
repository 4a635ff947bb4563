package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/postboard/postboard/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an auth event to the database.
func (r *Repository) LogEvent(event *entities.AuthEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetEvents retrieves paginated auth events for an account, ordered by most
// recent first. accountID 0 returns events for all accounts.
func (r *Repository) GetEvents(accountID uint, limit, offset int) ([]entities.AuthEvent, int64, error) {
	var events []entities.AuthEvent
	var total int64

	query := r.db.Model(&entities.AuthEvent{})
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// GetEventsByType retrieves auth events filtered by type.
func (r *Repository) GetEventsByType(eventType entities.AuthEventType, accountID uint, limit, offset int) ([]entities.AuthEvent, int64, error) {
	var events []entities.AuthEvent
	var total int64

	query := r.db.Model(&entities.AuthEvent{}).Where("event_type = ?", eventType)
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// DeleteOldEvents removes auth events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.AuthEvent{})
	return result.RowsAffected, result.Error
}
