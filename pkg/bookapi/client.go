package bookapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/rs/zerolog"
)

const (
	// DefaultPageSize 每页图书数量
	DefaultPageSize = 100
	// DefaultPageNo 固定读取的页码
	DefaultPageNo = 150

	maxResponseBytes = 16 << 20
)

// Client 图书目录接口
type Client interface {
	// FetchAllBooks 获取当前完整目录，不做任何缓存
	FetchAllBooks(ctx context.Context) ([]Book, error)
}

// Config 图书 API 客户端配置
type Config struct {
	BaseURL    string
	ServiceKey string
	PageSize   int
	PageNo     int
	Timeout    time.Duration
}

// HTTPClient 基于 HTTP 的图书目录客户端
type HTTPClient struct {
	baseURL    *url.URL
	serviceKey string
	pageSize   int
	pageNo     int
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New 创建图书 API 客户端
func New(cfg *Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("book api base url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse book api base url: %w", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageNo := cfg.PageNo
	if pageNo <= 0 {
		pageNo = DefaultPageNo
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		baseURL:    u,
		serviceKey: cfg.ServiceKey,
		pageSize:   pageSize,
		pageNo:     pageNo,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// requestURL 拼接服务密钥和分页参数，保留 base url 中已有的查询参数
func (c *HTTPClient) requestURL() string {
	u := *c.baseURL
	q := u.Query()
	q.Set("serviceKey", c.serviceKey)
	q.Set("numOfRows", strconv.Itoa(c.pageSize))
	q.Set("pageNo", strconv.Itoa(c.pageNo))
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchAllBooks 发起一次 GET 请求并解析整个目录
func (c *HTTPClient) FetchAllBooks(ctx context.Context) ([]Book, error) {
	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(), nil)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to build book catalog request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("endpoint", c.baseURL.Host+c.baseURL.Path).Msg("Book catalog request failed")
		return nil, apierror.WrapError(apierror.ErrBookCatalogUnavailable, apierror.ErrBookCatalogUnavailable.Message, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error().Int("status", resp.StatusCode).Msg("Book catalog returned non-success status")
		return nil, apierror.WrapError(
			apierror.ErrBookCatalogUnavailable,
			fmt.Sprintf("The book catalog API returned status %d.", resp.StatusCode),
			nil,
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrBookCatalogUnavailable, "Failed to read the book catalog response.", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, apierror.ErrBookCatalogResponseNull
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apierror.WrapError(apierror.ErrBookCatalogResponseMalformed, "The book catalog response is not valid JSON.", err)
	}

	books, err := Parse(raw)
	if err != nil {
		logger.Error().Err(err).Msg("Book catalog response has unexpected shape")
		return nil, err
	}

	logger.Debug().Int("count", len(books)).Msg("Book catalog fetched")
	return books, nil
}
