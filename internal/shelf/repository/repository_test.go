package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	// 使用 t.Cleanup 确保在测试真正结束时清理，支持并发测试
	t.Cleanup(func() {
		_ = repo.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return repo
}

// createTestMember 创建测试用成员
func createTestMember(t *testing.T, repo *Repository, id string) *model.Member {
	t.Helper()
	member := &model.Member{ID: id, Name: "writer-" + id}
	require.NoError(t, repo.Members().Create(context.Background(), member))
	return member
}

func TestNew_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "shelf.db")
	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestRepository_Transaction(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := repo.Transaction(ctx, func(tx *Repository) error {
			return tx.Members().Create(ctx, &model.Member{ID: "mem-commit", Name: "a"})
		})
		require.NoError(t, err)

		got, err := repo.Members().GetByID(ctx, "mem-commit")
		require.NoError(t, err)
		assert.Equal(t, "a", got.Name)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.Transaction(ctx, func(tx *Repository) error {
			if err := tx.Members().Create(ctx, &model.Member{ID: "mem-rollback", Name: "b"}); err != nil {
				return err
			}
			if _, _, err := tx.Tags().GetOrCreate(ctx, "rolled-back"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = repo.Members().GetByID(ctx, "mem-rollback")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		_, err = repo.Tags().GetByName(ctx, "rolled-back")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
