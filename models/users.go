package models

import "time"

type Users struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uk_users_email" json:"email"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_users_username" json:"username"`
	FirstName string    `gorm:"column:first_name;type:varchar(150);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(150);not null" json:"last_name"`
	Password  string    `gorm:"column:password;type:varchar(150);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// UserFollow 订阅关系，唯一键: user_id + author_id，且 user_id != author_id
type UserFollow struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_follow_user_author,priority:1" json:"user_id"`     // 关注人
	AuthorID  uint64    `gorm:"column:author_id;not null;uniqueIndex:uk_follow_user_author,priority:2;index" json:"author_id"` // 被关注人
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}
