// Package service 提供业务逻辑层的服务实现
package service

import (
	"time"

	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/bookapi"
	"github.com/jinzhu/copier"
)

// memberModelToEntity 将 model.Member 转换为 entity.Member
func memberModelToEntity(m *model.Member) (*entity.Member, error) {
	e := &entity.Member{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)

	return e, nil
}

// postModelToSummary 将 model.Post 转换为 entity.PostSummary
// post 需要预加载 Member 和 PostTags.Tag
func postModelToSummary(m *model.Post) (*entity.PostSummary, error) {
	e := &entity.PostSummary{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	e.PostID = m.ID
	e.Tags = m.TagNames()
	if m.Member != nil {
		e.Writer = m.Member.Name
	}

	return e, nil
}

// booksToEntity 将目录条目转换为 entity.Book，结果永远不为 nil
func booksToEntity(books []bookapi.Book) ([]entity.Book, error) {
	out := make([]entity.Book, 0, len(books))
	if len(books) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &books); err != nil {
		return nil, err
	}
	return out, nil
}
