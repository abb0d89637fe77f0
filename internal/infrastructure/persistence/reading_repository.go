package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/utilibill/backend/internal/domain/metering"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/infrastructure/persistence/models"
)

// GormReadingRepository implements metering.ReadingRepository using GORM
type GormReadingRepository struct {
	db *gorm.DB
}

// NewGormReadingRepository creates a new GormReadingRepository
func NewGormReadingRepository(db *gorm.DB) *GormReadingRepository {
	return &GormReadingRepository{db: db}
}

// Insert stores a new reading
func (r *GormReadingRepository) Insert(ctx context.Context, reading *metering.Reading) error {
	var model models.ReadingModel
	model.FromDomain(reading)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a reading by its ID
func (r *GormReadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*metering.Reading, error) {
	var model models.ReadingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMeter lists the readings recorded for a meter, newest first
func (r *GormReadingRepository) FindByMeter(ctx context.Context, meterID uuid.UUID, limit int) ([]metering.Reading, error) {
	query := r.db.WithContext(ctx).
		Where("meter_id = ?", meterID).
		Order("recorded_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var readingModels []models.ReadingModel
	if err := query.Find(&readingModels).Error; err != nil {
		return nil, err
	}

	readings := make([]metering.Reading, len(readingModels))
	for i, model := range readingModels {
		readings[i] = *model.ToDomain()
	}
	return readings, nil
}
