package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns nil without an error when the singleton row is missing.
func (r *ProfileRepo) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save replaces the singleton row, creating it if the seed is missing. The
// original created_at is kept.
func (r *ProfileRepo) Save(ctx context.Context, profile *models.Profile) error {
	profile.ID = models.ProfileID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.Select("created_at").First(&existing, models.ProfileID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			profile.CreatedAt = existing.CreatedAt
		}
		return tx.Save(profile).Error
	})
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(dbresolver.Write).First(profile, models.ProfileID).Error
}
