// Package catalog 博客接入数据库之前写在代码里的文章，按 slug 同步进 posts 表
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout 目录文件中的日期格式
const DateLayout = "January 2, 2006"

//go:embed posts.yaml
var postsYAML []byte

type Author struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
}

// SourcePost 目录条目，ID 是旧 key，通常不是 UUID
type SourcePost struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Slug       string `yaml:"slug"`
	Excerpt    string `yaml:"excerpt"`
	Content    string `yaml:"content"`
	CoverImage string `yaml:"cover_image"`
	Date       string `yaml:"date"`
	Author     Author `yaml:"author"`
	Category   string `yaml:"category"`
}

// PublishedAt 解析失败返回零值
func (p SourcePost) PublishedAt() time.Time {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Catalog 只读，保持文件顺序
type Catalog struct {
	posts  []SourcePost
	bySlug map[string]int
}

// Default 解析内嵌的 posts.yaml
func Default() (*Catalog, error) {
	return Parse(postsYAML)
}

// Parse slug 为空或重复时报错
func Parse(data []byte) (*Catalog, error) {
	var posts []SourcePost
	if err := yaml.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{posts: posts, bySlug: make(map[string]int, len(posts))}
	for i, p := range posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("catalog entry %q has no slug", p.ID)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate catalog slug %q", p.Slug)
		}
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// All 返回副本
func (c *Catalog) All() []SourcePost {
	return append([]SourcePost(nil), c.posts...)
}

func (c *Catalog) BySlug(slug string) (SourcePost, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return SourcePost{}, false
	}
	return c.posts[i], true
}
