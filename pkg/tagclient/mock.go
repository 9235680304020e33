package tagclient

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient 是 Client 的 mock 实现
type MockClient struct {
	mock.Mock
}

// NewMockClient 创建新的 MockClient
func NewMockClient() *MockClient {
	return &MockClient{}
}

// RecommendTags 实现 Client 接口
func (m *MockClient) RecommendTags(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	tags, _ := args.Get(0).([]string)
	return tags, args.Error(1)
}
