// Package entity 定义业务实体
package entity

import (
	"errors"
	"strings"
)

// Member 成员信息
type Member struct {
	ID        string `json:"memberId"`  // 成员 ID: mem-{sonyflake}
	Name      string `json:"name"`      // 成员名称，文章列表中作为作者展示
	CreatedAt string `json:"createdAt"` // 创建时间
}

// CreateMemberRequest 创建成员请求
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// IsValid 校验请求参数
func (r *CreateMemberRequest) IsValid() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name must not be blank")
	}
	return nil
}

// CreateMemberResponse 创建成员响应
type CreateMemberResponse struct {
	Member *Member `json:"member"`
}

// DescribeMemberRequest 描述成员请求
type DescribeMemberRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// DescribeMemberResponse 描述成员响应
type DescribeMemberResponse struct {
	Member *Member `json:"member"`
}
