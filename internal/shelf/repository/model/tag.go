package model

import (
	"time"
)

// Tag 标签表，按名称全局唯一，被多篇文章共享
// 名称大小写敏感，唯一性由 idx_tags_name_unique 保证
type Tag struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // tag-{sonyflake}
	Name      string    `gorm:"type:text;not null;column:name" json:"name"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
