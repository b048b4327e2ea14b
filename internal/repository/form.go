package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	CreateForm(ctx context.Context, f *form.Form) error
	GetFormByID(ctx context.Context, id string) (*form.Form, error)
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(ctx context.Context, f *form.Form) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// GetFormByID returns gorm.ErrRecordNotFound for ids that are not UUIDs, so
// callers see a plain miss instead of a driver syntax error.
func (r *DBFormRepo) GetFormByID(ctx context.Context, id string) (*form.Form, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var f form.Form
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}
