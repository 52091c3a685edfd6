package model

import "time"

// Post 博客文章，slug 全局唯一，id 创建后不可变
type Post struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Slug         string    `json:"slug" gorm:"type:varchar(255);uniqueIndex:ux_posts_slug;not null"`
	Excerpt      string    `json:"excerpt" gorm:"type:text"`
	Content      string    `json:"content" gorm:"type:text"`
	CoverImage   string    `json:"cover_image" gorm:"type:text"`
	Category     string    `json:"category" gorm:"type:varchar(128);index:idx_posts_category"`
	AuthorName   string    `json:"author_name" gorm:"type:varchar(128)"`
	AuthorAvatar string    `json:"author_avatar" gorm:"type:text"`
	Date         time.Time `json:"date" gorm:"index:idx_posts_date;not null"`
}

func (Post) TableName() string { return "posts" }

// PostDraft 编辑器提交的新文章，Slug 为空时由标题生成
type PostDraft struct {
	Title        string
	Slug         string
	Excerpt      string
	Content      string
	CoverImage   string
	Category     string
	AuthorName   string
	AuthorAvatar string
}

// PostPatch 稀疏更新：只有非 nil 字段会被写入
type PostPatch struct {
	Title        *string
	Slug         *string
	Excerpt      *string
	Content      *string
	CoverImage   *string
	Category     *string
	AuthorName   *string
	AuthorAvatar *string
}

// Columns 返回需要写入的列
func (p PostPatch) Columns() map[string]any {
	cols := make(map[string]any)
	set := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	set("title", p.Title)
	set("slug", p.Slug)
	set("excerpt", p.Excerpt)
	set("content", p.Content)
	set("cover_image", p.CoverImage)
	set("category", p.Category)
	set("author_name", p.AuthorName)
	set("author_avatar", p.AuthorAvatar)
	return cols
}

// IsEmpty 没有任何字段需要更新
func (p PostPatch) IsEmpty() bool { return len(p.Columns()) == 0 }
