package model

import "time"

// Comment 匿名评论，post_id 只是引用，不声明外键
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"type:varchar(36);index:idx_comments_post_created;not null"`
	Name      string    `json:"name" gorm:"type:varchar(128);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_comments_post_created"`
}

func (Comment) TableName() string { return "comments" }
