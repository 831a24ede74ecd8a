package models

import "time"

var SkillCategories = []string{"frontend", "backend", "devops", "design", "other"}

type Skill struct {
	ID                uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name              string    `json:"name" gorm:"column:name;type:text;not null"`
	Category          string    `json:"category" gorm:"column:category;type:text;not null"`
	Icon              *string   `json:"icon,omitempty" gorm:"column:icon;type:text"`
	YearsOfExperience int       `json:"years_of_experience" gorm:"column:years_of_experience;not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}
