package model

import "time"

// LegacyPostID 旧数字 id 到 posts.id 的映射，迁移时写入一次
type LegacyPostID struct {
	LegacyID  string `gorm:"primaryKey;type:varchar(64)"`
	PostID    string `gorm:"type:varchar(36);index;not null"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
}

func (LegacyPostID) TableName() string { return "legacy_post_ids" }
