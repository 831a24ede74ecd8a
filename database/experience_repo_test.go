package database

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExperience(company string) *models.Experience {
	return &models.Experience{
		Company:      company,
		Position:     "Engineer",
		Location:     "Remote",
		Type:         "full-time",
		StartDate:    "2022-01-01",
		Description:  "Built things",
		Achievements: models.NewStringList([]string{"Shipped v1"}),
	}
}

func TestExperienceRepoTechnologiesKeepOrder(t *testing.T) {
	repo := NewExperienceRepo(setupTestDB(t))
	ctx := context.Background()

	e := newExperience("Acme")
	require.NoError(t, repo.Add(ctx, e, []string{"Go", "Rust"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"Go", "Rust"}, all[0].TechnologyNames())
	assert.Equal(t, []string{"Shipped v1"}, all[0].AchievementList())
	assert.Nil(t, all[0].EndDate)
}

func TestExperienceRepoOrdersByStartDate(t *testing.T) {
	repo := NewExperienceRepo(setupTestDB(t))
	ctx := context.Background()

	older := newExperience("Old")
	older.StartDate = "2019-05-01"
	newer := newExperience("New")
	newer.StartDate = "2023-02-01"
	require.NoError(t, repo.Add(ctx, older, nil))
	require.NoError(t, repo.Add(ctx, newer, nil))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "New", all[0].Company)
	assert.Equal(t, "Old", all[1].Company)
}

func TestExperienceRepoUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExperienceRepo(db)
	ctx := context.Background()

	e := newExperience("Acme")
	require.NoError(t, repo.Add(ctx, e, []string{"Go"}))

	techs := []string{"Rust", "Go"}
	require.NoError(t, repo.Update(ctx, e, &techs))
	assert.Equal(t, []string{"Rust", "Go"}, e.TechnologyNames())

	require.NoError(t, repo.Delete(ctx, e.ID))
	var links int64
	require.NoError(t, db.Model(&models.ExperienceTechnology{}).Count(&links).Error)
	assert.Zero(t, links)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), gorm.ErrRecordNotFound)
}
