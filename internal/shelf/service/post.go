package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/metrics"
	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/jimyag/shelf/pkg/idgen"
	"github.com/jimyag/shelf/pkg/tagclient"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PostService 文章服务
// 创建和更新文章时根据内容推导标签，外部调用在事务开启之前完成
type PostService struct {
	repo      *repository.Repository
	tagClient tagclient.Client
	idGen     *idgen.Generator
}

// NewPostService 创建文章服务
func NewPostService(repo *repository.Repository, tagClient tagclient.Client) *PostService {
	return &PostService{
		repo:      repo,
		tagClient: tagClient,
		idGen:     idgen.New(),
	}
}

// CreatePost 创建文章，推荐服务没有返回标签时文章不带标签
func (s *PostService) CreatePost(ctx context.Context, req *entity.CreatePostRequest) (*entity.CreatePostResponse, error) {
	logger := zerolog.Ctx(ctx)

	member, err := findMember(ctx, s.repo, req.MemberID)
	if err != nil {
		return nil, err
	}

	tagNames, err := recommendTags(ctx, s.tagClient, req.Contents)
	if err != nil {
		return nil, err
	}

	postID, err := s.idGen.GeneratePostID()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate post ID")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to generate post ID", err)
	}

	post := &model.Post{
		ID:       postID,
		MemberID: member.ID,
		Title:    req.Title,
		Contents: req.Contents,
		ImageURL: req.ImageURL,
	}

	created := 0
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Posts().Create(ctx, post); err != nil {
			return apierror.WrapError(apierror.ErrInternalError, "Failed to save post", err)
		}
		linker := newPostTagLinker(tx, s.idGen)
		if err := linker.attachAll(ctx, post, tagNames); err != nil {
			return err
		}
		created = linker.created
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("post_id", postID).Msg("Failed to create post")
		return nil, err
	}
	recordTagsCreated(created)

	post.Member = member
	summary, err := postModelToSummary(post)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert post", err)
	}

	logger.Info().
		Str("post_id", post.ID).
		Str("member_id", member.ID).
		Int("tags", len(post.PostTags)).
		Msg("Post created successfully")

	return &entity.CreatePostResponse{Post: summary}, nil
}

// UpdatePost 更新文章并用新内容重新推导全部标签
// 推荐服务没有返回标签时旧标签被清空，不视为错误
func (s *PostService) UpdatePost(ctx context.Context, req *entity.UpdatePostRequest) (*entity.UpdatePostResponse, error) {
	logger := zerolog.Ctx(ctx)

	post, err := s.findPostWithTags(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Contents != nil {
		post.Contents = *req.Contents
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	tagNames, err := recommendTags(ctx, s.tagClient, post.Contents)
	if err != nil {
		return nil, err
	}

	created := 0
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Posts().Update(ctx, post); err != nil {
			return apierror.WrapError(apierror.ErrInternalError, "Failed to update post", err)
		}
		linker := newPostTagLinker(tx, s.idGen)
		if err := linker.replaceAll(ctx, post, tagNames); err != nil {
			return err
		}
		created = linker.created
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("post_id", post.ID).Msg("Failed to update post")
		return nil, err
	}
	recordTagsCreated(created)

	summary, err := postModelToSummary(post)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert post", err)
	}

	logger.Info().
		Str("post_id", post.ID).
		Int("tags", len(post.PostTags)).
		Msg("Post updated successfully")

	return &entity.UpdatePostResponse{Post: summary}, nil
}

// DeletePost 删除文章及其全部标签关联，标签本身保留
func (s *PostService) DeletePost(ctx context.Context, req *entity.DeletePostRequest) (*entity.DeletePostResponse, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := findPost(ctx, s.repo, req.PostID); err != nil {
		return nil, err
	}

	if err := s.repo.Posts().Delete(ctx, req.PostID); err != nil {
		logger.Error().Err(err).Str("post_id", req.PostID).Msg("Failed to delete post")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to delete post", err)
	}

	logger.Info().Str("post_id", req.PostID).Msg("Post deleted successfully")
	return &entity.DeletePostResponse{Return: true}, nil
}

// ListPostsForMember 列出成员的全部文章
func (s *PostService) ListPostsForMember(ctx context.Context, req *entity.ListPostsRequest) (*entity.ListPostsResponse, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := findMember(ctx, s.repo, req.MemberID); err != nil {
		return nil, err
	}

	posts, err := s.repo.Posts().ListByMember(ctx, req.MemberID)
	if err != nil {
		logger.Error().Err(err).Str("member_id", req.MemberID).Msg("Failed to list posts")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to list posts", err)
	}

	summaries := make([]entity.PostSummary, 0, len(posts))
	for _, post := range posts {
		summary, err := postModelToSummary(post)
		if err != nil {
			return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert post", err)
		}
		summaries = append(summaries, *summary)
	}

	return &entity.ListPostsResponse{Posts: summaries}, nil
}

// findPostWithTags 查找文章及其作者和标签
func (s *PostService) findPostWithTags(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.repo.Posts().GetByIDWithTags(ctx, postID)
	if err != nil {
		return nil, postLookupError(ctx, postID, err)
	}
	return post, nil
}

// findPost 查找文章，不存在时返回 ErrPostNotFound
func findPost(ctx context.Context, repo *repository.Repository, postID string) (*model.Post, error) {
	post, err := repo.Posts().GetByID(ctx, postID)
	if err != nil {
		return nil, postLookupError(ctx, postID, err)
	}
	return post, nil
}

func postLookupError(ctx context.Context, postID string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.WrapError(apierror.ErrPostNotFound, fmt.Sprintf("Post %s does not exist", postID), err)
	}
	zerolog.Ctx(ctx).Error().Err(err).Str("post_id", postID).Msg("Failed to get post")
	return apierror.WrapError(apierror.ErrInternalError, "Failed to get post", err)
}

func recordTagsCreated(n int) {
	for i := 0; i < n; i++ {
		metrics.RecordTagCreated()
	}
}
