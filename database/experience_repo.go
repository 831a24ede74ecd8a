package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

func (r *ExperienceRepo) FindAll(ctx context.Context) ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.WithContext(ctx).
		Preload("Technologies", orderByID).
		Order("start_date DESC").Order("id DESC").
		Find(&experiences).Error
	return experiences, err
}

func (r *ExperienceRepo) FindByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.WithContext(ctx).Preload("Technologies", orderByID).First(&experience, id).Error
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepo) Add(ctx context.Context, experience *models.Experience, technologies []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(experience).Error; err != nil {
			return err
		}
		return writeExperienceTechnologies(tx, experience.ID, technologies)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, experience)
}

// Update saves every column; technologies are rewritten only when non-nil.
func (r *ExperienceRepo) Update(ctx context.Context, experience *models.Experience, technologies *[]string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, experience); err != nil {
			return err
		}
		if technologies == nil {
			return nil
		}
		return replaceExperienceTechnologies(tx, experience.ID, *technologies)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, experience)
}

func (r *ExperienceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("experience_id = ?", id).Delete(&models.ExperienceTechnology{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Experience{}, id)
	})
}

func (r *ExperienceRepo) reload(ctx context.Context, experience *models.Experience) error {
	var fresh models.Experience
	err := r.db.WithContext(ctx).Clauses(dbresolver.Write).Preload("Technologies", orderByID).First(&fresh, experience.ID).Error
	if err != nil {
		return err
	}
	*experience = fresh
	return nil
}
