package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/tariff"
)

// ReadingModel is the persistence model for meter readings
type ReadingModel struct {
	BaseModel
	MeterID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Month         string    `gorm:"type:varchar(7);not null"`
	UnitsConsumed int64     `gorm:"not null"`
	Class         string    `gorm:"type:varchar(20);not null;default:'residential'"`
	RecordedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReadingModel) TableName() string {
	return "readings"
}

// ToDomain converts the persistence model to a domain Reading
func (m *ReadingModel) ToDomain() *metering.Reading {
	return &metering.Reading{
		BaseEntity:    m.BaseModel.ToDomain(),
		MeterID:       m.MeterID,
		CustomerID:    m.CustomerID,
		Month:         m.Month,
		UnitsConsumed: m.UnitsConsumed,
		Class:         tariff.ConnectionClass(m.Class),
		RecordedAt:    m.RecordedAt,
	}
}

// FromDomain populates the persistence model from a domain Reading
func (m *ReadingModel) FromDomain(r *metering.Reading) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.MeterID = r.MeterID
	m.CustomerID = r.CustomerID
	m.Month = r.Month
	m.UnitsConsumed = r.UnitsConsumed
	m.Class = string(r.Class)
	m.RecordedAt = r.RecordedAt
}

// BillModel is the persistence model for the Bill aggregate. The unique
// index on reading_id backs the one-bill-per-reading guarantee.
type BillModel struct {
	AggregateModel
	ReadingID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bills_reading"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate    time.Time       `gorm:"not null"`
	IsPaid     bool            `gorm:"not null;default:false;index"`
	PaidAt     *time.Time
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		ReadingID:  m.ReadingID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		DueDate:    m.DueDate,
		IsPaid:     m.IsPaid,
		PaidAt:     m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Bill
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.ReadingID = b.ReadingID
	m.CustomerID = b.CustomerID
	m.Amount = b.Amount
	m.DueDate = b.DueDate
	m.IsPaid = b.IsPaid
	m.PaidAt = b.PaidAt
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	BaseModel
	BillID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaidAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity: m.BaseModel.ToDomain(),
		BillID:     m.BillID,
		Amount:     m.Amount,
		PaidAt:     m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.BillID = p.BillID
	m.Amount = p.Amount
	m.PaidAt = p.PaidAt
}
