package repository

import (
	"context"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostTagRepository 文章标签关联仓库接口
type PostTagRepository interface {
	Create(ctx context.Context, postTag *model.PostTag) error
	ListByPost(ctx context.Context, postID string) ([]*model.PostTag, error)
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}

type postTagRepository struct {
	db *gorm.DB
}

// NewPostTagRepository 创建文章标签关联仓库
func NewPostTagRepository(db *gorm.DB) PostTagRepository {
	return &postTagRepository{db: db}
}

// Create 创建一条关联
func (r *postTagRepository) Create(ctx context.Context, postTag *model.PostTag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(postTag).Error
}

// ListByPost 按顺序获取文章的所有关联（含标签）
func (r *postTagRepository) ListByPost(ctx context.Context, postID string) ([]*model.PostTag, error) {
	var postTags []*model.PostTag
	if err := r.db.WithContext(ctx).
		Preload("Tag").
		Where("post_id = ?", postID).
		Order("position ASC").
		Find(&postTags).Error; err != nil {
		return nil, err
	}
	return postTags, nil
}

// DeleteByPost 一条语句删除文章的所有关联，返回删除的行数
func (r *postTagRepository) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.PostTag{})
	return result.RowsAffected, result.Error
}
