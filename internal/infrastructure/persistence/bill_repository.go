package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/infrastructure/persistence/models"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Insert stores a newly issued bill. The unique index on reading_id rejects
// a second bill for the same reading, also under concurrency.
func (r *GormBillRepository) Insert(ctx context.Context, bill *billing.Bill) error {
	var model models.BillModel
	model.FromDomain(bill)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicateBill
		}
		return err
	}
	return nil
}

// FindByID finds a bill by its ID
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByReadingID finds the bill issued for a reading
func (r *GormBillRepository) FindByReadingID(ctx context.Context, readingID uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "reading_id = ?", readingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindUnpaidByCustomer lists a customer's outstanding bills, oldest first
func (r *GormBillRepository) FindUnpaidByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Bill, error) {
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_paid = ?", customerID, false).
		Order("due_date ASC").
		Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.Bill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// Settle atomically flips the bill to paid and records the payment. The
// compare-and-set on is_paid decides the winner between concurrent payers:
// the update matching zero rows means someone else settled first, and the
// whole transaction rolls back.
func (r *GormBillRepository) Settle(ctx context.Context, bill *billing.Bill, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BillModel{}).
			Where("id = ? AND is_paid = ?", bill.ID, false).
			Updates(map[string]any{
				"is_paid":    true,
				"paid_at":    bill.PaidAt,
				"version":    bill.Version,
				"updated_at": bill.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrAlreadyPaid
		}

		var paymentModel models.PaymentModel
		paymentModel.FromDomain(payment)
		return tx.Create(&paymentModel).Error
	})
}
