package repository

import (
	"context"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"gorm.io/gorm"
)

// MemberRepository 成员仓库接口
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建成员仓库
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create 创建成员
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID 根据 ID 获取成员，不存在时返回 gorm.ErrRecordNotFound
func (r *memberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
