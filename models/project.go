package models

import (
	"time"

	"gorm.io/datatypes"
)

const MaxProjectImages = 3

var (
	ProjectCategories = []string{"web", "mobile", "desktop", "other"}
	ProjectStatuses   = []string{"completed", "in-progress", "archived"}
)

// Project represents a portfolio project. ImageURL always mirrors the first
// entry of ImageURLs.
type Project struct {
	ID              uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title           string         `json:"title" gorm:"column:title;type:text;not null"`
	Description     string         `json:"description" gorm:"column:description;type:text;not null"`
	LongDescription *string        `json:"long_description,omitempty" gorm:"column:long_description;type:text"`
	ImageURL        *string        `json:"image_url,omitempty" gorm:"column:image_url;type:text"`
	ImageURLs       datatypes.JSON `json:"image_urls" gorm:"column:image_urls;type:text"`
	DemoURL         *string        `json:"demo_url,omitempty" gorm:"column:demo_url;type:text"`
	GithubURL       *string        `json:"github_url,omitempty" gorm:"column:github_url;type:text"`
	Category        string         `json:"category" gorm:"column:category;type:text;not null"`
	Featured        Flag           `json:"featured" gorm:"column:featured;type:integer;not null"`
	Status          string         `json:"status" gorm:"column:status;type:text;not null"`
	StartDate       string         `json:"start_date" gorm:"column:start_date;type:text;not null"`
	EndDate         *string        `json:"end_date,omitempty" gorm:"column:end_date;type:text"`
	CreatedAt       time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime;index"`
	Tags            []ProjectTag   `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

// SetImages stores the list and keeps the primary image in sync with it.
func (p *Project) SetImages(urls []string) {
	p.ImageURLs = NewStringList(urls)
	p.ImageURL = nil
	if len(urls) > 0 {
		first := urls[0]
		p.ImageURL = &first
	}
}

func (p *Project) Images() []string {
	return StringList(p.ImageURLs)
}

func (p *Project) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Tag)
	}
	return names
}
