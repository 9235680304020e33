package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/pkg/bookapi"
	"github.com/jimyag/shelf/pkg/tagclient"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestServices 包含测试所需的所有服务和依赖
type TestServices struct {
	Repo           *repository.Repository
	MockTagClient  *tagclient.MockClient
	MockBookClient *bookapi.MockClient
	MemberService  *MemberService
	PostService    *PostService
	BookService    *BookService
}

// setupTestServices 为每个测试用例创建独立的测试环境
// 每个测试用例都会获得自己的数据库、mock clients 和 service 实例
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	// 创建临时目录和数据库（每个测试用例都有独立的数据库文件）
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := repository.New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
		_ = os.RemoveAll(tmpDir)
	})

	mockTagClient := tagclient.NewMockClient()
	mockBookClient := bookapi.NewMockClient()

	return &TestServices{
		Repo:           repo,
		MockTagClient:  mockTagClient,
		MockBookClient: mockBookClient,
		MemberService:  NewMemberService(repo),
		PostService:    NewPostService(repo, mockTagClient),
		BookService:    NewBookService(repo, mockTagClient, mockBookClient),
	}
}

// createTestMember 创建测试用成员并返回其 ID
func createTestMember(t *testing.T, ts *TestServices, name string) string {
	t.Helper()
	resp, err := ts.MemberService.CreateMember(context.Background(), &entity.CreateMemberRequest{Name: name})
	require.NoError(t, err)
	return resp.Member.ID
}

// createTestPost 创建测试用文章，推荐服务为 contents 返回 tags
func createTestPost(t *testing.T, ts *TestServices, memberID, contents string, tags []string) *entity.PostSummary {
	t.Helper()
	ts.MockTagClient.On("RecommendTags", mock.Anything, contents).Return(tags, nil).Once()
	resp, err := ts.PostService.CreatePost(context.Background(), &entity.CreatePostRequest{
		MemberID: memberID,
		Title:    "title",
		Contents: contents,
	})
	require.NoError(t, err)
	return resp.Post
}
