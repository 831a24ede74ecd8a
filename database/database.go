package database

import (
	"gorm.io/gorm"
)

type Database struct {
	db              *gorm.DB
	projectRepo     *ProjectRepo
	tagRepo         *TagRepo
	experienceRepo  *ExperienceRepo
	skillRepo       *SkillRepo
	galleryRepo     *GalleryRepo
	certificateRepo *CertificateRepo
	profileRepo     *ProfileRepo
	adminUserRepo   *AdminUserRepo
	sessionRepo     *SessionRepo
	overviewRepo    *OverviewRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projectRepo:     NewProjectRepo(db),
		tagRepo:         NewTagRepo(db),
		experienceRepo:  NewExperienceRepo(db),
		skillRepo:       NewSkillRepo(db),
		galleryRepo:     NewGalleryRepo(db),
		certificateRepo: NewCertificateRepo(db),
		profileRepo:     NewProfileRepo(db),
		adminUserRepo:   NewAdminUserRepo(db),
		sessionRepo:     NewSessionRepo(db),
		overviewRepo:    NewOverviewRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) DB() *gorm.DB {
	return d.db
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) GalleryRepo() *GalleryRepo {
	return d.galleryRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) OverviewRepo() *OverviewRepo {
	return d.overviewRepo
}
