package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

func (r *SkillRepo) FindAll(ctx context.Context) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.WithContext(ctx).Order("years_of_experience DESC").Order("id DESC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) FindByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Add(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepo) Update(ctx context.Context, skill *models.Skill) error {
	return updateRow(r.db.WithContext(ctx), skill)
}

func (r *SkillRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Skill{}, id)
}
