package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, most recently updated first, with tags in
// insertion order.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Preload("Tags", orderByID).
		Order("updated_at DESC").Order("id DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns gorm.ErrRecordNotFound when the project does not exist.
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Tags", orderByID).First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts the project and its tag links in one transaction, then reloads
// it into project.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		return writeProjectTags(tx, project.ID, tags)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, project)
}

// Update saves every column of project. Tag links are rewritten only when tags
// is non-nil.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project, tags *[]string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, project); err != nil {
			return err
		}
		if tags == nil {
			return nil
		}
		return replaceProjectTags(tx, project.ID, *tags)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, project)
}

// Delete removes the project together with its tag links.
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Project{}, id)
	})
}

func (r *ProjectRepo) reload(ctx context.Context, project *models.Project) error {
	var fresh models.Project
	err := r.db.WithContext(ctx).Clauses(dbresolver.Write).Preload("Tags", orderByID).First(&fresh, project.ID).Error
	if err != nil {
		return err
	}
	*project = fresh
	return nil
}
