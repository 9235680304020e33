package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/idgen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository 标签仓库接口
type TagRepository interface {
	GetByName(ctx context.Context, name string) (*model.Tag, error)
	GetOrCreate(ctx context.Context, name string) (*model.Tag, bool, error)
	List(ctx context.Context) ([]*model.Tag, error)
}

type tagRepository struct {
	db    *gorm.DB
	idGen *idgen.Generator
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db, idGen: idgen.DefaultGenerator()}
}

// GetByName 根据名称精确获取标签，不存在时返回 gorm.ErrRecordNotFound
func (r *tagRepository) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetOrCreate 获取同名标签，不存在则创建，第二个返回值表示是否由本次调用创建
// 插入使用 ON CONFLICT DO NOTHING，并发创建同名标签时输掉的一方会重新查询到胜出方写入的行
func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (*model.Tag, bool, error) {
	tag, err := r.GetByName(ctx, name)
	if err == nil {
		return tag, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("get tag %q: %w", name, err)
	}

	id, err := r.idGen.GenerateTagID()
	if err != nil {
		return nil, false, err
	}
	candidate := &model.Tag{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(candidate)
	if result.Error != nil {
		return nil, false, fmt.Errorf("create tag %q: %w", name, result.Error)
	}

	tag, err = r.GetByName(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("reload tag %q: %w", name, err)
	}
	return tag, result.RowsAffected == 1, nil
}

// List 获取所有标签，按名称排序
func (r *tagRepository) List(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
