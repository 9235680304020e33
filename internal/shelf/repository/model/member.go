package model

import (
	"time"

	"gorm.io/gorm"
)

// Member 成员表，文章的作者
type Member struct {
	ID        string         `gorm:"primaryKey;type:text;column:id" json:"id"` // mem-{sonyflake}
	Name      string         `gorm:"type:text;not null;column:name" json:"name"`
	CreatedAt time.Time      `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime;index:idx_members_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (Member) TableName() string {
	return "members"
}
