package mysql

import (
	"context"

	"library-ops-backend/internal/domain/title"

	"gorm.io/gorm"
)

type TitleRepository struct{ db *gorm.DB }

func NewTitleRepository(db *gorm.DB) *TitleRepository { return &TitleRepository{db: db} }

func (r *TitleRepository) Create(ctx context.Context, t *title.Title) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TitleRepository) Save(ctx context.Context, t *title.Title) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TitleRepository) GetByTitleID(ctx context.Context, titleID string) (*title.Title, error) {
	var out title.Title
	res := r.db.WithContext(ctx).Where("title_id = ?", titleID).First(&out)
	return &out, res.Error
}

func (r *TitleRepository) GetByTitleIDForUpdate(ctx context.Context, titleID string) (*title.Title, error) {
	var out title.Title
	res := forUpdate(r.db.WithContext(ctx)).Where("title_id = ?", titleID).First(&out)
	return &out, res.Error
}
