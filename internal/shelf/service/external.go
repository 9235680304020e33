package service

import (
	"context"
	"time"

	"github.com/jimyag/shelf/internal/shelf/metrics"
	"github.com/jimyag/shelf/pkg/bookapi"
	"github.com/jimyag/shelf/pkg/tagclient"
	"github.com/rs/zerolog"
)

// recommendTags 调用标签推荐服务，错误原样返回
func recommendTags(ctx context.Context, client tagclient.Client, text string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	start := time.Now()
	tags, err := client.RecommendTags(ctx, text)
	metrics.RecordExternalCall(metrics.ServiceTagRecommender, start, err)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get recommended tags")
		return nil, err
	}

	logger.Debug().Strs("tags", tags).Msg("Got recommended tags")
	return tags, nil
}

// fetchBooks 获取完整图书目录，错误原样返回
func fetchBooks(ctx context.Context, client bookapi.Client) ([]bookapi.Book, error) {
	logger := zerolog.Ctx(ctx)

	start := time.Now()
	books, err := client.FetchAllBooks(ctx)
	metrics.RecordExternalCall(metrics.ServiceBookCatalog, start, err)
	if err != nil {
		if stage, ok := bookapi.StageOf(err); ok {
			logger.Error().Err(err).Str("stage", string(stage)).Msg("Book catalog response is malformed")
		} else {
			logger.Error().Err(err).Msg("Failed to fetch book catalog")
		}
		return nil, err
	}

	metrics.SetCatalogEntries(len(books))
	return books, nil
}
