package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/utilibill/backend/internal/domain/notification"
)

// NotificationModel is the persistence model for notifications
type NotificationModel struct {
	BaseModel
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	BillID     *uuid.UUID `gorm:"type:uuid;index"`
	Title      string     `gorm:"type:varchar(200);not null"`
	Message    string     `gorm:"type:text;not null"`
	IsRead     bool       `gorm:"not null;default:false"`
	SentAt     time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		BillID:     m.BillID,
		Title:      m.Title,
		Message:    m.Message,
		IsRead:     m.IsRead,
		SentAt:     m.SentAt,
	}
}

// FromDomain populates the persistence model from a domain Notification
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.CustomerID = n.CustomerID
	m.BillID = n.BillID
	m.Title = n.Title
	m.Message = n.Message
	m.IsRead = n.IsRead
	m.SentAt = n.SentAt
}
