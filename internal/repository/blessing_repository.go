package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kaineetam/internal/model"
)

// BlessingRepository defines blessing persistence operations. Blessings are
// write-once: there is deliberately no Update or Delete.
type BlessingRepository interface {
	Create(ctx context.Context, blessing *model.Blessing) error
	FindByCode(ctx context.Context, code string) (*model.Blessing, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]model.Blessing, error)
}

type blessingRepository struct {
	db *gorm.DB
}

// NewBlessingRepository creates a new blessing repository.
func NewBlessingRepository(db *gorm.DB) BlessingRepository {
	return &blessingRepository{db: db}
}

// Create persists a new blessing record.
func (r *blessingRepository) Create(ctx context.Context, blessing *model.Blessing) error {
	return r.db.WithContext(ctx).Create(blessing).Error
}

// FindByCode finds a blessing by its share code.
func (r *blessingRepository) FindByCode(ctx context.Context, code string) (*model.Blessing, error) {
	var blessing model.Blessing
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&blessing).Error; err != nil {
		return nil, err
	}
	return &blessing, nil
}

// ListBySender returns all blessings created by a sender, newest first.
func (r *blessingRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]model.Blessing, error) {
	var blessings []model.Blessing
	if err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&blessings).Error; err != nil {
		return nil, err
	}
	return blessings, nil
}
