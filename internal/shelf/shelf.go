// Package shelf 提供 Shelf 服务器的主入口和初始化逻辑
package shelf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/shelf/internal/shelf/api"
	"github.com/jimyag/shelf/internal/shelf/config"
	"github.com/jimyag/shelf/internal/shelf/repository"
	"github.com/jimyag/shelf/internal/shelf/service"
	"github.com/jimyag/shelf/pkg/bookapi"
	"github.com/jimyag/shelf/pkg/tagclient"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 创建 Repository
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}
	logger.Info().Str("db_path", cfg.DBPath).Msg("Repository initialized")

	// 2. 创建外部服务客户端
	tagClient, err := tagclient.New(cfg.TagRecommender.URL, cfg.HTTPTimeout)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("create tag recommender client: %w", err)
	}

	bookClient, err := bookapi.New(&bookapi.Config{
		BaseURL:    cfg.BookAPI.BaseURL,
		ServiceKey: cfg.BookAPI.ServiceKey,
		PageSize:   cfg.BookAPI.PageSize,
		PageNo:     cfg.BookAPI.PageNo,
		Timeout:    cfg.HTTPTimeout,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("create book api client: %w", err)
	}

	// 3. 创建 Service
	memberService := service.NewMemberService(repo)
	postService := service.NewPostService(repo, tagClient)
	bookService := service.NewBookService(repo, tagClient, bookClient)

	// 4. 创建 API
	apiInstance, err := api.New(cfg.Address, memberService, postService, bookService)
	if err != nil {
		repo.Close()
		return nil, err
	}

	server := &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	zerolog.DefaultContextLogger.Info().Str("address", s.cfg.Address).Msg("Starting shelf server")

	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return s.repo.Close()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "Shelf Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
