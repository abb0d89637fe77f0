package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/utilibill/backend/internal/domain/notification"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/infrastructure/persistence/models"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Insert stores a new notification
func (r *GormNotificationRepository) Insert(ctx context.Context, n *notification.Notification) error {
	var model models.NotificationModel
	model.FromDomain(n)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID loads a notification by its ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByCustomer returns a customer's notifications, newest first
func (r *GormNotificationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*notification.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notificationModels []models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToDomain()
	}
	return notifications, nil
}

// MarkRead flips the read flag, scoped to the owning customer. The customer
// filter keeps one customer from touching another's notifications; a miss
// on either condition reports the same not found.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id, customerID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ? AND customer_id = ?", id, customerID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
