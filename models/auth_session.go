package models

import "time"

// AuthSession is a bearer-token session. Expired rows stay until logout or
// the optional sweeper removes them.
type AuthSession struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;not null;index:idx_auth_sessions_user_id"`
	User      AdminUser `json:"user" gorm:"foreignKey:UserID;references:ID"`
	Token     string    `json:"-" gorm:"column:token;type:text;not null;uniqueIndex:idx_auth_sessions_token"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;not null;index:idx_auth_sessions_expires_at"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}
