package model

// All 返回需要迁移的全部模型
func All() []any {
	return []any{
		&Post{},
		&Comment{},
		&Interaction{},
		&LegacyPostID{},
		&AdminUser{},
		&ContactMessage{},
		&Subscriber{},
	}
}
