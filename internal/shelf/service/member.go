package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/jimyag/shelf/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// MemberService 成员服务
type MemberService struct {
	repo  *repository.Repository
	idGen *idgen.Generator
}

// NewMemberService 创建成员服务
func NewMemberService(repo *repository.Repository) *MemberService {
	return &MemberService{
		repo:  repo,
		idGen: idgen.New(),
	}
}

// CreateMember 创建成员
func (s *MemberService) CreateMember(ctx context.Context, req *entity.CreateMemberRequest) (*entity.CreateMemberResponse, error) {
	logger := zerolog.Ctx(ctx)

	memberID, err := s.idGen.GenerateMemberID()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate member ID")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to generate member ID", err)
	}

	member := &model.Member{
		ID:   memberID,
		Name: req.Name,
	}
	if err := s.repo.Members().Create(ctx, member); err != nil {
		logger.Error().Err(err).Msg("Failed to save member")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to save member", err)
	}

	result, err := memberModelToEntity(member)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert member", err)
	}

	logger.Info().
		Str("member_id", member.ID).
		Msg("Member created successfully")

	return &entity.CreateMemberResponse{Member: result}, nil
}

// DescribeMember 获取成员信息
func (s *MemberService) DescribeMember(ctx context.Context, req *entity.DescribeMemberRequest) (*entity.DescribeMemberResponse, error) {
	member, err := findMember(ctx, s.repo, req.MemberID)
	if err != nil {
		return nil, err
	}

	result, err := memberModelToEntity(member)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert member", err)
	}
	return &entity.DescribeMemberResponse{Member: result}, nil
}

// findMember 查找成员，不存在时返回 ErrMemberNotFound
func findMember(ctx context.Context, repo *repository.Repository, memberID string) (*model.Member, error) {
	member, err := repo.Members().GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrMemberNotFound, fmt.Sprintf("Member %s does not exist", memberID), err)
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("member_id", memberID).Msg("Failed to get member")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to get member", err)
	}
	return member, nil
}
