// Package repo holds the gorm-backed stores. Transcript id uniqueness
// is enforced by the primary key at the storage layer.
package repo

import (
	"context"
	"errors"
	"fmt"

	"meetwise/internal/model"

	"gorm.io/gorm"
)

type Users struct{ db *gorm.DB }

func NewUsers(db *gorm.DB) *Users { return &Users{db: db} }

func (r *Users) Create(ctx context.Context, u *model.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("%w: insert user: %v", model.ErrPersistence, err)
	}
	return nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query user: %v", model.ErrPersistence, err)
	}
	return &u, nil
}

type Transcripts struct{ db *gorm.DB }

func NewTranscripts(db *gorm.DB) *Transcripts { return &Transcripts{db: db} }

func (r *Transcripts) Create(ctx context.Context, t *model.Transcript) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("%w: insert transcript: %v", model.ErrPersistence, err)
	}
	return nil
}

func (r *Transcripts) ListByOwner(ctx context.Context, userID string) ([]model.Transcript, error) {
	var out []model.Transcript
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list transcripts: %v", model.ErrPersistence, err)
	}
	return out, nil
}
