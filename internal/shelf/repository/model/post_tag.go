package model

import (
	"time"
)

// PostTag 文章与标签的关联表
// 每条关联是独立的行，便于按文章批量删除
type PostTag struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // pt-{sonyflake}
	PostID    string    `gorm:"type:text;not null;index:idx_post_tags_post_id;column:post_id" json:"post_id"`
	TagID     string    `gorm:"type:text;not null;index:idx_post_tags_tag_id;column:tag_id" json:"tag_id"`
	Position  int       `gorm:"type:integer;not null;column:position" json:"position"` // 推荐结果中的顺序
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`

	Tag *Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

// TableName 指定表名
func (PostTag) TableName() string {
	return "post_tags"
}
