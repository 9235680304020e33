package service

import (
	"context"

	"github.com/jimyag/shelf/internal/shelf/entity"
	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/jimyag/shelf/pkg/bookapi"
	"github.com/jimyag/shelf/pkg/tagclient"
	"github.com/rs/zerolog"
)

// recommendLimit 每次最多推荐的图书数量
const recommendLimit = 3

// BookService 图书推荐服务
type BookService struct {
	repo       *repository.Repository
	tagClient  tagclient.Client
	bookClient bookapi.Client
}

// NewBookService 创建图书推荐服务
func NewBookService(repo *repository.Repository, tagClient tagclient.Client, bookClient bookapi.Client) *BookService {
	return &BookService{
		repo:       repo,
		tagClient:  tagClient,
		bookClient: bookClient,
	}
}

// RecommendBooks 根据文章内容推荐图书
// 推荐服务没有返回标签时直接失败，不会请求图书目录
func (s *BookService) RecommendBooks(ctx context.Context, req *entity.RecommendBooksRequest) (*entity.RecommendBooksResponse, error) {
	logger := zerolog.Ctx(ctx)

	post, err := findPost(ctx, s.repo, req.PostID)
	if err != nil {
		return nil, err
	}

	tags, err := recommendTags(ctx, s.tagClient, post.Contents)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		logger.Info().Str("post_id", post.ID).Msg("No tags recommended for post")
		return nil, apierror.ErrTagRecommendationEmpty
	}

	books, err := fetchBooks(ctx, s.bookClient)
	if err != nil {
		return nil, err
	}

	matched := bookapi.Filter(books, tags, recommendLimit)
	if len(matched) == 0 {
		logger.Info().
			Str("post_id", post.ID).
			Strs("tags", tags).
			Int("catalog_size", len(books)).
			Msg("No books matched recommended tags")
		return nil, apierror.ErrBookCatalogNoResult
	}

	result, err := booksToEntity(matched)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert books", err)
	}

	logger.Info().
		Str("post_id", post.ID).
		Int("books", len(result)).
		Msg("Books recommended successfully")

	return &entity.RecommendBooksResponse{Books: result}, nil
}

// DescribeBooks 返回完整图书目录，不做过滤
func (s *BookService) DescribeBooks(ctx context.Context) (*entity.DescribeBooksResponse, error) {
	books, err := fetchBooks(ctx, s.bookClient)
	if err != nil {
		return nil, err
	}

	result, err := booksToEntity(books)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert books", err)
	}
	return &entity.DescribeBooksResponse{Books: result}, nil
}
