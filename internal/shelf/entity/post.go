package entity

import (
	"errors"
	"strings"
)

// PostSummary 文章摘要，内联作者名和按推荐顺序排列的标签名
type PostSummary struct {
	PostID   string   `json:"postId"`
	Title    string   `json:"title"`
	Contents string   `json:"contents"`
	Writer   string   `json:"writer"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// CreatePostRequest 创建文章请求，标签由文章内容推导，不接受客户端传入
type CreatePostRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Contents string `json:"contents" binding:"required"`
	ImageURL string `json:"imageUrl,omitempty"` // 已上传图片的地址
}

// IsValid 校验请求参数
func (r *CreatePostRequest) IsValid() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title must not be blank")
	}
	if strings.TrimSpace(r.Contents) == "" {
		return errors.New("contents must not be blank")
	}
	return nil
}

// CreatePostResponse 创建文章响应
type CreatePostResponse struct {
	Post *PostSummary `json:"post"`
}

// UpdatePostRequest 更新文章请求，未提供的字段保持不变
type UpdatePostRequest struct {
	PostID   string  `json:"postId" binding:"required"`
	Title    *string `json:"title,omitempty"`
	Contents *string `json:"contents,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// IsValid 校验请求参数
func (r *UpdatePostRequest) IsValid() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title must not be blank")
	}
	if r.Contents != nil && strings.TrimSpace(*r.Contents) == "" {
		return errors.New("contents must not be blank")
	}
	return nil
}

// UpdatePostResponse 更新文章响应
type UpdatePostResponse struct {
	Post *PostSummary `json:"post"`
}

// DeletePostRequest 删除文章请求
type DeletePostRequest struct {
	PostID string `json:"postId" binding:"required"`
}

// DeletePostResponse 删除文章响应
type DeletePostResponse struct {
	Return bool `json:"return"`
}

// ListPostsRequest 列出成员文章请求
type ListPostsRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// ListPostsResponse 列出成员文章响应
type ListPostsResponse struct {
	Posts []PostSummary `json:"posts"`
}
