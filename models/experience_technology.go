package models

// ExperienceTechnology links an experience to a technology name. Rows are read
// back in insertion (id) order.
type ExperienceTechnology struct {
	ID           uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExperienceID uint   `json:"experience_id" gorm:"column:experience_id;not null;index:idx_experience_technologies_experience_id"`
	Technology   string `json:"technology" gorm:"column:technology;type:text;not null;index:idx_experience_technologies_technology"`
}

func (ExperienceTechnology) TableName() string {
	return "experience_technologies"
}
