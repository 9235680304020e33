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

// PostServiceInterface 定义文章服务的接口
type PostServiceInterface interface {
	CreatePost(ctx context.Context, req *entity.CreatePostRequest) (*entity.CreatePostResponse, error)
	UpdatePost(ctx context.Context, req *entity.UpdatePostRequest) (*entity.UpdatePostResponse, error)
	DeletePost(ctx context.Context, req *entity.DeletePostRequest) (*entity.DeletePostResponse, error)
	ListPostsForMember(ctx context.Context, req *entity.ListPostsRequest) (*entity.ListPostsResponse, error)
}

type Post struct {
	postService PostServiceInterface
}

func NewPost(postService *service.PostService) *Post {
	return &Post{
		postService: postService,
	}
}

func (p *Post) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create", ginx.Adapt5(p.CreatePost))
	router.POST("/update", ginx.Adapt5(p.UpdatePost))
	router.POST("/delete", ginx.Adapt5(p.DeletePost))
	router.POST("/list", ginx.Adapt5(p.ListPosts))
}

func (p *Post) CreatePost(ctx *gin.Context, req *entity.CreatePostRequest) (*entity.CreatePostResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("member_id", req.MemberID).
		Str("title", req.Title).
		Msg("CreatePost called")

	response, err := p.postService.CreatePost(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("member_id", req.MemberID).
			Msg("Failed to create post")
		return nil, err
	}

	ctx.Status(http.StatusCreated)
	return response, nil
}

func (p *Post) UpdatePost(ctx *gin.Context, req *entity.UpdatePostRequest) (*entity.UpdatePostResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("post_id", req.PostID).
		Msg("UpdatePost called")

	response, err := p.postService.UpdatePost(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("post_id", req.PostID).
			Msg("Failed to update post")
		return nil, err
	}
	return response, nil
}

func (p *Post) DeletePost(ctx *gin.Context, req *entity.DeletePostRequest) (*entity.DeletePostResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("post_id", req.PostID).
		Msg("DeletePost called")

	response, err := p.postService.DeletePost(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("post_id", req.PostID).
			Msg("Failed to delete post")
		return nil, err
	}
	return response, nil
}

func (p *Post) ListPosts(ctx *gin.Context, req *entity.ListPostsRequest) (*entity.ListPostsResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("member_id", req.MemberID).
		Msg("ListPosts called")

	response, err := p.postService.ListPostsForMember(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("member_id", req.MemberID).
			Msg("Failed to list posts")
		return nil, err
	}
	return response, nil
}
