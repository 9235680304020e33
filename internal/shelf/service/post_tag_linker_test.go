package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newLinkerTestPost 直接在仓库中创建一篇没有标签的文章
func newLinkerTestPost(t *testing.T, ts *TestServices, postID string) *model.Post {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, ts.Repo.Members().Create(ctx, &model.Member{ID: "mem-linker", Name: "linker"}))
	post := &model.Post{ID: postID, MemberID: "mem-linker", Title: "t", Contents: "c"}
	require.NoError(t, ts.Repo.Posts().Create(ctx, post))
	return post
}

func TestPostTagLinker_ReplaceAll(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	ctx := context.Background()
	post := newLinkerTestPost(t, ts, "post-linker")

	err := ts.Repo.Transaction(ctx, func(tx *repository.Repository) error {
		return newPostTagLinker(tx, idgen.New()).attachAll(ctx, post, []string{"x", "y", "z"})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, post.TagNames())

	var linker *postTagLinker
	err = ts.Repo.Transaction(ctx, func(tx *repository.Repository) error {
		linker = newPostTagLinker(tx, idgen.New())
		return linker.replaceAll(ctx, post, []string{"z", "w"})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, linker.created)

	// 内存中的集合与数据库一致
	assert.Equal(t, []string{"z", "w"}, post.TagNames())
	stored, err := ts.Repo.Posts().GetByIDWithTags(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "w"}, stored.TagNames())
	for i, link := range stored.PostTags {
		assert.Equal(t, i, link.Position)
	}
}

func TestPostTagLinker_RollbackLeavesNoTags(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	ctx := context.Background()
	post := newLinkerTestPost(t, ts, "post-rollback")
	boom := errors.New("boom")

	err := ts.Repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := newPostTagLinker(tx, idgen.New()).attachAll(ctx, post, []string{"lost"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = ts.Repo.Tags().GetByName(ctx, "lost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	links, err := ts.Repo.PostTags().ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}
