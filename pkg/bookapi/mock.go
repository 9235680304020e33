package bookapi

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient 是 Client 的 mock 实现，用于测试，不会访问外部 API
type MockClient struct {
	mock.Mock
}

// NewMockClient 创建新的 MockClient
func NewMockClient() *MockClient {
	return &MockClient{}
}

// FetchAllBooks 实现 Client 接口
func (m *MockClient) FetchAllBooks(ctx context.Context) ([]Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]Book)
	return books, args.Error(1)
}
