package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-compatible copies of the persistence models. AutoMigrate creates
// the tables; the repositories then run against them with the real models.

type ReadingModelSQLite struct {
	ID            string    `gorm:"primaryKey"`
	MeterID       string    `gorm:"index;not null"`
	CustomerID    string    `gorm:"index;not null"`
	Month         string    `gorm:"not null"`
	UnitsConsumed int64     `gorm:"not null"`
	Class         string    `gorm:"not null;default:'residential'"`
	RecordedAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ReadingModelSQLite) TableName() string {
	return "readings"
}

type BillModelSQLite struct {
	ID         string `gorm:"primaryKey"`
	Version    int    `gorm:"not null;default:1"`
	ReadingID  string `gorm:"uniqueIndex;not null"`
	CustomerID string `gorm:"index;not null"`
	Amount     string `gorm:"not null"`
	DueDate    time.Time
	IsPaid     bool `gorm:"not null;default:false"`
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (BillModelSQLite) TableName() string {
	return "bills"
}

type PaymentModelSQLite struct {
	ID        string `gorm:"primaryKey"`
	BillID    string `gorm:"index;not null"`
	Amount    string `gorm:"not null"`
	PaidAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentModelSQLite) TableName() string {
	return "payments"
}

type CustomerModelSQLite struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CustomerModelSQLite) TableName() string {
	return "customers"
}

type NotificationModelSQLite struct {
	ID         string `gorm:"primaryKey"`
	CustomerID string `gorm:"index;not null"`
	BillID     *string
	Title      string `gorm:"not null"`
	Message    string `gorm:"not null"`
	IsRead     bool   `gorm:"not null;default:false"`
	SentAt     time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NotificationModelSQLite) TableName() string {
	return "notifications"
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&ReadingModelSQLite{},
		&BillModelSQLite{},
		&PaymentModelSQLite{},
		&CustomerModelSQLite{},
		&NotificationModelSQLite{},
	)
	require.NoError(t, err)

	return db
}
