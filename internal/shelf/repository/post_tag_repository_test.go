package repository

import (
	"context"
	"testing"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTagRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	postTagRepo := NewPostTagRepository(repo.DB())
	ctx := context.Background()
	createTestMember(t, repo, "mem-1")
	require.NoError(t, repo.Posts().Create(ctx, &model.Post{ID: "post-1", MemberID: "mem-1", Title: "t"}))
	require.NoError(t, repo.Posts().Create(ctx, &model.Post{ID: "post-2", MemberID: "mem-1", Title: "u"}))

	t.Run("ListByPost ordered by position", func(t *testing.T) {
		linkTags(t, repo, "post-1", "c", "a", "b")

		links, err := postTagRepo.ListByPost(ctx, "post-1")
		require.NoError(t, err)
		require.Len(t, links, 3)
		for i, want := range []string{"c", "a", "b"} {
			require.NotNil(t, links[i].Tag)
			assert.Equal(t, want, links[i].Tag.Name)
			assert.Equal(t, i, links[i].Position)
		}
	})

	t.Run("duplicate position rejected", func(t *testing.T) {
		tag, _, err := repo.Tags().GetOrCreate(ctx, "extra")
		require.NoError(t, err)
		err = postTagRepo.Create(ctx, &model.PostTag{ID: "pt-dup", PostID: "post-1", TagID: tag.ID, Position: 0})
		assert.Error(t, err)
	})

	t.Run("DeleteByPost only touches one post", func(t *testing.T) {
		linkTags(t, repo, "post-2", "a")

		n, err := postTagRepo.DeleteByPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		links, err := postTagRepo.ListByPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Empty(t, links)

		links, err = postTagRepo.ListByPost(ctx, "post-2")
		require.NoError(t, err)
		assert.Len(t, links, 1)
	})
}
