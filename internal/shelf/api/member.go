package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/service"
	"github.com/jimyag/shelf/pkg/ginx"
	"github.com/rs/zerolog"
)

// MemberServiceInterface 定义成员服务的接口
type MemberServiceInterface interface {
	CreateMember(ctx context.Context, req *entity.CreateMemberRequest) (*entity.CreateMemberResponse, error)
	DescribeMember(ctx context.Context, req *entity.DescribeMemberRequest) (*entity.DescribeMemberResponse, error)
}

type Member struct {
	memberService MemberServiceInterface
}

func NewMember(memberService *service.MemberService) *Member {
	return &Member{
		memberService: memberService,
	}
}

func (m *Member) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create", ginx.Adapt5(m.CreateMember))
	router.POST("/describe", ginx.Adapt5(m.DescribeMember))
}

func (m *Member) CreateMember(ctx *gin.Context, req *entity.CreateMemberRequest) (*entity.CreateMemberResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Msg("CreateMember called")

	response, err := m.memberService.CreateMember(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create member")
		return nil, err
	}

	ctx.Status(http.StatusCreated)
	return response, nil
}

func (m *Member) DescribeMember(ctx *gin.Context, req *entity.DescribeMemberRequest) (*entity.DescribeMemberResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("member_id", req.MemberID).
		Msg("DescribeMember called")

	response, err := m.memberService.DescribeMember(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("member_id", req.MemberID).
			Msg("Failed to describe member")
		return nil, err
	}
	return response, nil
}
