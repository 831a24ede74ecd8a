package models

import (
	"time"

	"gorm.io/datatypes"
)

var ExperienceTypes = []string{"full-time", "part-time", "contract", "freelance"}

// Experience is a position held. A nil EndDate means it is ongoing.
type Experience struct {
	ID           uint                   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Company      string                 `json:"company" gorm:"column:company;type:text;not null"`
	Position     string                 `json:"position" gorm:"column:position;type:text;not null"`
	Location     string                 `json:"location" gorm:"column:location;type:text;not null"`
	Type         string                 `json:"type" gorm:"column:type;type:text;not null"`
	StartDate    string                 `json:"start_date" gorm:"column:start_date;type:text;not null"`
	EndDate      *string                `json:"end_date,omitempty" gorm:"column:end_date;type:text"`
	Description  string                 `json:"description" gorm:"column:description;type:text;not null"`
	Achievements datatypes.JSON         `json:"achievements" gorm:"column:achievements;type:text"`
	CreatedAt    time.Time              `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	Technologies []ExperienceTechnology `json:"technologies,omitempty" gorm:"foreignKey:ExperienceID;references:ID"`
}

func (e *Experience) AchievementList() []string {
	return StringList(e.Achievements)
}

func (e *Experience) TechnologyNames() []string {
	names := make([]string, 0, len(e.Technologies))
	for _, t := range e.Technologies {
		names = append(names, t.Technology)
	}
	return names
}
