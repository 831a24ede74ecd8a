package database

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSkillRepoOrdersByYears(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &models.Skill{Name: "CSS", Category: "frontend", YearsOfExperience: 2}))
	require.NoError(t, repo.Add(ctx, &models.Skill{Name: "Go", Category: "backend", YearsOfExperience: 5}))
	require.NoError(t, repo.Add(ctx, &models.Skill{Name: "Rust", Category: "backend", YearsOfExperience: 2}))

	skills, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, "Rust", skills[1].Name)
	assert.Equal(t, "CSS", skills[2].Name)
}

func TestGalleryRepoOrdersFeaturedFirst(t *testing.T) {
	repo := NewGalleryRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &models.Gallery{Title: "b", ImageURL: "u", SortOrder: 1}))
	require.NoError(t, repo.Add(ctx, &models.Gallery{Title: "a", ImageURL: "u", SortOrder: 0}))
	require.NoError(t, repo.Add(ctx, &models.Gallery{Title: "featured", ImageURL: "u", SortOrder: 9, IsFeatured: true}))

	galleries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, galleries, 3)
	assert.Equal(t, "featured", galleries[0].Title)
	assert.Equal(t, "a", galleries[1].Title)
	assert.Equal(t, "b", galleries[2].Title)
}

func TestCertificateRepoCRUD(t *testing.T) {
	repo := NewCertificateRepo(setupTestDB(t))
	ctx := context.Background()

	c := &models.Certificate{Title: "CKA", Issuer: "CNCF", IssueDate: "2024-06-01"}
	require.NoError(t, repo.Add(ctx, c))

	c.Issuer = "Linux Foundation"
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linux Foundation", found.Issuer)
	assert.False(t, found.UpdatedAt.Before(found.CreatedAt))

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), gorm.ErrRecordNotFound)
}

func TestUpdateAfterDeleteDoesNotRecreate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		model  any
		update func(t *testing.T) error
	}{
		{"skill", &models.Skill{}, func(t *testing.T) error {
			repo := NewSkillRepo(db)
			s := &models.Skill{Name: "Go", Category: "backend", YearsOfExperience: 3}
			require.NoError(t, repo.Add(ctx, s))
			require.NoError(t, repo.Delete(ctx, s.ID))
			s.YearsOfExperience = 4
			return repo.Update(ctx, s)
		}},
		{"gallery", &models.Gallery{}, func(t *testing.T) error {
			repo := NewGalleryRepo(db)
			g := &models.Gallery{Title: "Talk", ImageURL: "u"}
			require.NoError(t, repo.Add(ctx, g))
			require.NoError(t, repo.Delete(ctx, g.ID))
			g.Title = "Talk v2"
			return repo.Update(ctx, g)
		}},
		{"certificate", &models.Certificate{}, func(t *testing.T) error {
			repo := NewCertificateRepo(db)
			c := &models.Certificate{Title: "CKA", Issuer: "CNCF", IssueDate: "2024-06-01"}
			require.NoError(t, repo.Add(ctx, c))
			require.NoError(t, repo.Delete(ctx, c.ID))
			c.Issuer = "LF"
			return repo.Update(ctx, c)
		}},
		{"project", &models.Project{}, func(t *testing.T) error {
			repo := NewProjectRepo(db)
			p := newProject("X")
			require.NoError(t, repo.Add(ctx, p, nil))
			require.NoError(t, repo.Delete(ctx, p.ID))
			p.Title = "Y"
			return repo.Update(ctx, p, nil)
		}},
		{"experience", &models.Experience{}, func(t *testing.T) error {
			repo := NewExperienceRepo(db)
			e := newExperience("Acme")
			require.NoError(t, repo.Add(ctx, e, nil))
			require.NoError(t, repo.Delete(ctx, e.ID))
			e.Position = "Lead"
			return repo.Update(ctx, e, nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update(t)

			assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
			assert.Equal(t, http.StatusNotFound, errs.NewDatabaseError("update", tt.name, err).StatusCode)
			var n int64
			require.NoError(t, db.Model(tt.model).Count(&n).Error)
			assert.Zero(t, n)
		})
	}
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	repo := NewSkillRepo(setupTestDB(t))
	ctx := context.Background()

	s := &models.Skill{Name: "Go", Category: "backend", YearsOfExperience: 3}
	require.NoError(t, repo.Add(ctx, s))
	created, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)

	created.CreatedAt = created.CreatedAt.Add(-time.Hour)
	created.YearsOfExperience = 4
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.YearsOfExperience)
	assert.True(t, found.CreatedAt.Equal(s.CreatedAt))
	assert.False(t, found.UpdatedAt.Before(found.CreatedAt))
}

func TestProfileRepoGetAndSave(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	seeded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Equal(t, models.ProfileID, seeded.ID)

	github := "https://github.com/me"
	require.NoError(t, repo.Save(ctx, &models.Profile{
		Name: "Me", Tagline: "t", Bio: "b", Email: "me@example.com", Location: "Earth", GithubURL: &github,
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Me", got.Name)
	assert.Equal(t, github, *got.GithubURL)

	require.NoError(t, db.Exec("DELETE FROM profile").Error)
	missing, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOverviewRepoCounts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	projects := NewProjectRepo(db)
	done := newProject("done")
	done.Status = "completed"
	require.NoError(t, projects.Add(ctx, done, []string{"Go"}))
	require.NoError(t, projects.Add(ctx, newProject("wip"), nil))
	require.NoError(t, NewSkillRepo(db).Add(ctx, &models.Skill{Name: "Go", Category: "backend", YearsOfExperience: 1}))

	o, err := NewOverviewRepo(db).Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Overview{
		TotalProjects:  2,
		ActiveProjects: 1,
		TotalSkills:    1,
		TotalTags:      1,
	}, o)
}

func TestSkillRepoQueryFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "skills"`).WillReturnError(errors.New("boom"))

	_, err = NewSkillRepo(db).FindAll(context.Background())
	require.Error(t, err)

	apiErr := errs.NewDatabaseError("list skills", "skills", err)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
