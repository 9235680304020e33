package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/service"
	"github.com/jimyag/shelf/pkg/ginx"
	"github.com/rs/zerolog"
)

// BookServiceInterface 定义图书服务的接口
type BookServiceInterface interface {
	RecommendBooks(ctx context.Context, req *entity.RecommendBooksRequest) (*entity.RecommendBooksResponse, error)
	DescribeBooks(ctx context.Context) (*entity.DescribeBooksResponse, error)
}

type Book struct {
	bookService BookServiceInterface
}

func NewBook(bookService *service.BookService) *Book {
	return &Book{
		bookService: bookService,
	}
}

func (b *Book) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe", ginx.Adapt3(b.DescribeBooks))
	router.POST("/recommend", ginx.Adapt5(b.RecommendBooks))
}

func (b *Book) DescribeBooks(ctx *gin.Context) (*entity.DescribeBooksResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("DescribeBooks called")

	response, err := b.bookService.DescribeBooks(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to describe books")
		return nil, err
	}

	logger.Info().
		Int("count", len(response.Books)).
		Msg("Books described successfully")
	return response, nil
}

func (b *Book) RecommendBooks(ctx *gin.Context, req *entity.RecommendBooksRequest) (*entity.RecommendBooksResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("post_id", req.PostID).
		Msg("RecommendBooks called")

	response, err := b.bookService.RecommendBooks(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("post_id", req.PostID).
			Msg("Failed to recommend books")
		return nil, err
	}
	return response, nil
}
