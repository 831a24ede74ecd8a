package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type GalleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) *GalleryRepo {
	return &GalleryRepo{db}
}

// FindAll puts featured items first, then follows the manual sort order.
func (r *GalleryRepo) FindAll(ctx context.Context) ([]*models.Gallery, error) {
	var galleries []*models.Gallery
	err := r.db.WithContext(ctx).
		Order("is_featured DESC").Order("sort_order ASC").Order("id DESC").
		Find(&galleries).Error
	return galleries, err
}

func (r *GalleryRepo) FindByID(ctx context.Context, id uint) (*models.Gallery, error) {
	var gallery models.Gallery
	if err := r.db.WithContext(ctx).First(&gallery, id).Error; err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepo) Add(ctx context.Context, gallery *models.Gallery) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

func (r *GalleryRepo) Update(ctx context.Context, gallery *models.Gallery) error {
	return updateRow(r.db.WithContext(ctx), gallery)
}

func (r *GalleryRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Gallery{}, id)
}
