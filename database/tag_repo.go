package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

func (r *TagRepo) FindAll(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *TagRepo) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add is a plain insert; a duplicate name surfaces as gorm.ErrDuplicatedKey.
func (r *TagRepo) Add(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// Rename changes the tag's name and rewrites every project and experience
// link that referenced the old name. tag is left untouched on failure.
func (r *TagRepo) Rename(ctx context.Context, tag *models.Tag, name string) error {
	renamed := *tag
	renamed.Name = name
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, &renamed); err != nil {
			return err
		}
		if err := tx.Model(&models.ProjectTag{}).Where("tag = ?", tag.Name).Update("tag", name).Error; err != nil {
			return err
		}
		return tx.Model(&models.ExperienceTechnology{}).Where("technology = ?", tag.Name).Update("technology", name).Error
	})
	if err != nil {
		return err
	}
	*tag = renamed
	return nil
}

// Delete removes the tag and every link holding its name.
func (r *TagRepo) Delete(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteByID(tx, &models.Tag{}, tag.ID); err != nil {
			return err
		}
		if err := tx.Where("tag = ?", tag.Name).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		return tx.Where("technology = ?", tag.Name).Delete(&models.ExperienceTechnology{}).Error
	})
}
