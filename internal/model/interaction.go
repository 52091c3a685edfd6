package model

import "time"

// InteractionType 反应类型
type InteractionType string

const (
	InteractionLike       InteractionType = "like"
	InteractionLove       InteractionType = "love"
	InteractionInsightful InteractionType = "insightful"
	InteractionCelebrate  InteractionType = "celebrate"
)

// InteractionTypes 全部已知类型，顺序固定
var InteractionTypes = []InteractionType{
	InteractionLike,
	InteractionLove,
	InteractionInsightful,
	InteractionCelebrate,
}

func (t InteractionType) Valid() bool {
	for _, k := range InteractionTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Interaction 文章反应
type Interaction struct {
	ID     string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID string          `json:"post_id" gorm:"type:varchar(36);index:idx_interactions_post;uniqueIndex:ux_interactions_visitor;not null"`
	Type   InteractionType `json:"type" gorm:"type:varchar(16);not null"`
	// Name 访客标识；复合唯一键 (post_id, name) 保证同一访客只能反应一次，NULL 不参与比较
	Name      *string   `json:"name,omitempty" gorm:"type:varchar(128);uniqueIndex:ux_interactions_visitor"`
	CreatedAt time.Time `json:"created_at"`
}

func (Interaction) TableName() string { return "post_interactions" }

// InteractionCounts 按类型聚合的计数，总是包含全部四种类型
type InteractionCounts map[InteractionType]int64

// NewInteractionCounts 返回全部类型为 0 的计数
func NewInteractionCounts() InteractionCounts {
	c := make(InteractionCounts, len(InteractionTypes))
	for _, t := range InteractionTypes {
		c[t] = 0
	}
	return c
}

// Apply 暂定地给 t 加一，返回撤销函数；写入失败时调用撤销函数恢复原值
func (c InteractionCounts) Apply(t InteractionType) (revert func()) {
	prev, had := c[t]
	c[t] = prev + 1
	return func() {
		if had {
			c[t] = prev
		} else {
			delete(c, t)
		}
	}
}

// Clone 深拷贝
func (c InteractionCounts) Clone() InteractionCounts {
	out := make(InteractionCounts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
