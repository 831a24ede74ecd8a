package models

import "time"

type Certificate struct {
	ID            uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"column:title;type:text;not null"`
	Issuer        string    `json:"issuer" gorm:"column:issuer;type:text;not null"`
	IssueDate     string    `json:"issue_date" gorm:"column:issue_date;type:text;not null"`
	CredentialURL *string   `json:"credential_url,omitempty" gorm:"column:credential_url;type:text"`
	ImageURL      *string   `json:"image_url,omitempty" gorm:"column:image_url;type:text"`
	Description   *string   `json:"description,omitempty" gorm:"column:description;type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}
