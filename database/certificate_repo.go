package database

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

func (r *CertificateRepo) FindAll(ctx context.Context) ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.WithContext(ctx).Order("issue_date DESC").Order("id DESC").Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepo) FindByID(ctx context.Context, id uint) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := r.db.WithContext(ctx).First(&certificate, id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *CertificateRepo) Add(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *CertificateRepo) Update(ctx context.Context, certificate *models.Certificate) error {
	return updateRow(r.db.WithContext(ctx), certificate)
}

func (r *CertificateRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Certificate{}, id)
}
