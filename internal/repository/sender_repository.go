package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kaineetam/internal/model"
)

// SenderRepository defines sender profile persistence operations.
type SenderRepository interface {
	Create(ctx context.Context, sender *model.Sender) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sender, error)
	FindByEmail(ctx context.Context, email string) (*model.Sender, error)
}

type senderRepository struct {
	db *gorm.DB
}

// NewSenderRepository creates a new sender repository.
func NewSenderRepository(db *gorm.DB) SenderRepository {
	return &senderRepository{db: db}
}

// Create creates a new sender profile.
func (r *senderRepository) Create(ctx context.Context, sender *model.Sender) error {
	return r.db.WithContext(ctx).Create(sender).Error
}

// FindByID finds a sender by ID.
func (r *senderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sender, error) {
	var sender model.Sender
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sender).Error; err != nil {
		return nil, err
	}
	return &sender, nil
}

// FindByEmail finds a sender by email.
func (r *senderRepository) FindByEmail(ctx context.Context, email string) (*model.Sender, error) {
	var sender model.Sender
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sender).Error; err != nil {
		return nil, err
	}
	return &sender, nil
}
