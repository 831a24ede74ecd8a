package models

import "time"

type Gallery struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"column:title;type:text;not null"`
	Description *string   `json:"description,omitempty" gorm:"column:description;type:text"`
	ImageURL    string    `json:"image_url" gorm:"column:image_url;type:text;not null"`
	SortOrder   int       `json:"sort_order" gorm:"column:sort_order;not null"`
	IsFeatured  Flag      `json:"is_featured" gorm:"column:is_featured;type:integer;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}
