package model

import (
	"time"

	"gorm.io/gorm"
)

// Post 文章表
type Post struct {
	ID        string         `gorm:"primaryKey;type:text;column:id" json:"id"` // post-{sonyflake}
	MemberID  string         `gorm:"type:text;not null;index:idx_posts_member_id;column:member_id" json:"member_id"`
	Title     string         `gorm:"type:text;not null;column:title" json:"title"`
	Contents  string         `gorm:"type:text;not null;column:contents" json:"contents"`
	ImageURL  string         `gorm:"type:text;column:image_url" json:"image_url"`
	CreatedAt time.Time      `gorm:"type:datetime;not null;index:idx_posts_created_at;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime;index:idx_posts_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除

	Member   *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	PostTags []PostTag `gorm:"foreignKey:PostID" json:"post_tags,omitempty"` // 按 Position 排序，只能通过 service 中的 postTagLinker 修改
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// TagNames 按推荐顺序返回文章的标签名
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.PostTags))
	for _, pt := range p.PostTags {
		if pt.Tag != nil {
			names = append(names, pt.Tag.Name)
		}
	}
	return names
}
