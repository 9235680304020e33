package service

import (
	"context"
	"fmt"

	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/jimyag/shelf/pkg/idgen"
)

// postTagLinker 维护文章与标签的关联
// post.PostTags 只能通过 attachAll 和 replaceAll 修改，保证内存中的集合与数据库中的行一致
type postTagLinker struct {
	tx    *repository.Repository
	idGen *idgen.Generator

	// created 本次新建的标签数，事务提交后再计入指标
	created int
}

// newPostTagLinker 创建绑定在事务 tx 上的 linker
func newPostTagLinker(tx *repository.Repository, idGen *idgen.Generator) *postTagLinker {
	return &postTagLinker{tx: tx, idGen: idGen}
}

// attachAll 按顺序为文章追加标签关联，重复的标签名也会各自生成一条关联
func (l *postTagLinker) attachAll(ctx context.Context, post *model.Post, tagNames []string) error {
	for _, name := range tagNames {
		tag, created, err := l.tx.Tags().GetOrCreate(ctx, name)
		if err != nil {
			return apierror.WrapError(apierror.ErrTagPersistence, fmt.Sprintf("Failed to resolve tag %q", name), err)
		}
		if created {
			l.created++
		}

		id, err := l.idGen.GeneratePostTagID()
		if err != nil {
			return apierror.WrapError(apierror.ErrInternalError, "Failed to generate post tag ID", err)
		}

		link := model.PostTag{
			ID:       id,
			PostID:   post.ID,
			TagID:    tag.ID,
			Position: len(post.PostTags),
		}
		if err := l.tx.PostTags().Create(ctx, &link); err != nil {
			return apierror.WrapError(apierror.ErrTagPersistence, fmt.Sprintf("Failed to link tag %q to post", name), err)
		}

		link.Tag = tag
		post.PostTags = append(post.PostTags, link)
	}
	return nil
}

// replaceAll 一次性删除文章已有的全部关联，再按 tagNames 重新建立
func (l *postTagLinker) replaceAll(ctx context.Context, post *model.Post, tagNames []string) error {
	if _, err := l.tx.PostTags().DeleteByPost(ctx, post.ID); err != nil {
		return apierror.WrapError(apierror.ErrTagPersistence, "Failed to remove existing post tags", err)
	}
	post.PostTags = nil

	return l.attachAll(ctx, post, tagNames)
}
