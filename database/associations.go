package database

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertTag inserts the tag if no tag with that name exists yet.
func upsertTag(tx *gorm.DB, name string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Tag{Name: name}).Error
}

// writeProjectTags links names to the project in order. Empty names are
// skipped; repeated names are linked once per occurrence.
func writeProjectTags(tx *gorm.DB, projectID uint, names []string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := upsertTag(tx, name); err != nil {
			return err
		}
		if err := tx.Create(&models.ProjectTag{ProjectID: projectID, Tag: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceProjectTags(tx *gorm.DB, projectID uint, names []string) error {
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
		return err
	}
	return writeProjectTags(tx, projectID, names)
}

func writeExperienceTechnologies(tx *gorm.DB, experienceID uint, names []string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := upsertTag(tx, name); err != nil {
			return err
		}
		if err := tx.Create(&models.ExperienceTechnology{ExperienceID: experienceID, Technology: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceExperienceTechnologies(tx *gorm.DB, experienceID uint, names []string) error {
	if err := tx.Where("experience_id = ?", experienceID).Delete(&models.ExperienceTechnology{}).Error; err != nil {
		return err
	}
	return writeExperienceTechnologies(tx, experienceID, names)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// updateRow writes every column of row except created_at. Unlike Save it
// never inserts, so a row deleted since it was loaded yields
// gorm.ErrRecordNotFound.
func updateRow(tx *gorm.DB, row any) error {
	result := tx.Model(row).Select("*").Omit("created_at", clause.Associations).Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID removes one row and reports gorm.ErrRecordNotFound when nothing
// matched.
func deleteByID(tx *gorm.DB, model any, id uint) error {
	result := tx.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
