package models

import "time"

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID uint = 1

type Profile struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;type:text;not null"`
	Tagline     string    `json:"tagline" gorm:"column:tagline;type:text;not null"`
	Bio         string    `json:"bio" gorm:"column:bio;type:text;not null"`
	Email       string    `json:"email" gorm:"column:email;type:text;not null"`
	Phone       *string   `json:"phone,omitempty" gorm:"column:phone;type:text"`
	Location    string    `json:"location" gorm:"column:location;type:text;not null"`
	AvatarURL   *string   `json:"avatar_url,omitempty" gorm:"column:avatar_url;type:text"`
	ResumeURL   *string   `json:"resume_url,omitempty" gorm:"column:resume_url;type:text"`
	GithubURL   *string   `json:"github_url,omitempty" gorm:"column:github_url;type:text"`
	LinkedinURL *string   `json:"linkedin_url,omitempty" gorm:"column:linkedin_url;type:text"`
	TwitterURL  *string   `json:"twitter_url,omitempty" gorm:"column:twitter_url;type:text"`
	WebsiteURL  *string   `json:"website_url,omitempty" gorm:"column:website_url;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profile"
}
