package repository

import (
	"context"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository 文章仓库接口
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetByIDWithTags(ctx context.Context, id string) (*model.Post, error)
	ListByMember(ctx context.Context, memberID string) ([]*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withTags 预加载作者和按顺序排列的标签
func withTags(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Member").
		Preload("PostTags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("PostTags.Tag")
}

// Create 创建文章，只写 posts 表，关联由 PostTagRepository 单独维护
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// Update 更新文章字段，不触碰关联
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

// GetByID 根据 ID 获取文章，不存在时返回 gorm.ErrRecordNotFound
func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDWithTags 获取文章及其作者和标签
func (r *postRepository) GetByIDWithTags(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := withTags(r.db.WithContext(ctx)).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByMember 获取成员的所有文章（含标签），按创建顺序排列
func (r *postRepository) ListByMember(ctx context.Context, memberID string) ([]*model.Post, error) {
	var posts []*model.Post
	if err := withTags(r.db.WithContext(ctx)).
		Where("member_id = ?", memberID).
		Order("created_at ASC, id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete 删除文章，同时删除它的所有标签关联
func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}
