package repository

import (
	"context"

	"github.com/linskybing/survey-platform/internal/domain/submission"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepo interface {
	CreateResponse(ctx context.Context, r *submission.Response) error
	ListResponsesByFormID(ctx context.Context, formID string) ([]submission.Response, error)
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{
		db: db,
	}
}

func (r *DBResponseRepo) CreateResponse(ctx context.Context, resp *submission.Response) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(resp).Error
}

func (r *DBResponseRepo) ListResponsesByFormID(ctx context.Context, formID string) ([]submission.Response, error) {
	var responses []submission.Response
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at asc").
		Find(&responses).Error
	return responses, err
}
