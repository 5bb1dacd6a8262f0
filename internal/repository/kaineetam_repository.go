package repository

import (
	"context"

	"gorm.io/gorm"

	"kaineetam/internal/model"
)

// KaineetamRepository defines persistence for the append-only payment log.
type KaineetamRepository interface {
	Append(ctx context.Context, entry *model.KaineetamLog) error
	ListByBlessing(ctx context.Context, blessingCode string) ([]model.KaineetamLog, error)
}

type kaineetamRepository struct {
	db *gorm.DB
}

// NewKaineetamRepository creates a new kaineetam log repository.
func NewKaineetamRepository(db *gorm.DB) KaineetamRepository {
	return &kaineetamRepository{db: db}
}

// Append writes a confirmation entry. The write is synchronous: once Append
// returns, a dashboard read must see the entry.
func (r *kaineetamRepository) Append(ctx context.Context, entry *model.KaineetamLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByBlessing returns all entries for a blessing in arrival order.
func (r *kaineetamRepository) ListByBlessing(ctx context.Context, blessingCode string) ([]model.KaineetamLog, error) {
	var entries []model.KaineetamLog
	if err := r.db.WithContext(ctx).
		Where("blessing_code = ?", blessingCode).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
