package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Overview struct {
	TotalProjects     int64
	ActiveProjects    int64
	TotalExperiences  int64
	TotalSkills       int64
	TotalGalleries    int64
	TotalCertificates int64
	TotalTags         int64
}

type OverviewRepo struct {
	db *gorm.DB
}

func NewOverviewRepo(db *gorm.DB) *OverviewRepo {
	return &OverviewRepo{db}
}

// Counts runs every count concurrently; the first failure cancels the rest.
func (r *OverviewRepo) Counts(ctx context.Context) (Overview, error) {
	var o Overview
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model any, conds ...any) {
		g.Go(func() error {
			q := r.db.WithContext(gctx).Model(model)
			if len(conds) > 0 {
				q = q.Where(conds[0], conds[1:]...)
			}
			return q.Count(dst).Error
		})
	}

	count(&o.TotalProjects, &models.Project{})
	count(&o.ActiveProjects, &models.Project{}, "status = ?", "in-progress")
	count(&o.TotalExperiences, &models.Experience{})
	count(&o.TotalSkills, &models.Skill{})
	count(&o.TotalGalleries, &models.Gallery{})
	count(&o.TotalCertificates, &models.Certificate{})
	count(&o.TotalTags, &models.Tag{})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return o, nil
}
