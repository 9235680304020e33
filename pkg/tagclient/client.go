// Package tagclient 是内容标签推荐服务的客户端
package tagclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/rs/zerolog"
)

const maxResponseBytes = 1 << 20

// Client 标签推荐接口
type Client interface {
	// RecommendTags 根据文本返回按推荐顺序排列的标签，可能为空
	RecommendTags(ctx context.Context, text string) ([]string, error)
}

type recommendRequest struct {
	Text string `json:"text"`
}

type recommendResponse struct {
	Tags []string `json:"tags"`
}

// HTTPClient 通过 HTTP 调用推荐服务
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New 创建推荐服务客户端
func New(endpoint string, timeout time.Duration) (*HTTPClient, error) {
	if endpoint == "" {
		return nil, errors.New("tag recommender endpoint is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// RecommendTags 发起一次推荐请求，不做重试
// 返回结果中的空字符串会被丢弃，其余标签保持原样和原顺序
func (c *HTTPClient) RecommendTags(ctx context.Context, text string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	payload, err := json.Marshal(recommendRequest{Text: text})
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to encode tag recommendation request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to build tag recommendation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Tag recommendation request failed")
		return nil, apierror.WrapError(apierror.ErrTagRecommendationUnavailable, apierror.ErrTagRecommendationUnavailable.Message, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error().Int("status", resp.StatusCode).Msg("Tag recommender returned non-success status")
		return nil, apierror.WrapError(
			apierror.ErrTagRecommendationUnavailable,
			fmt.Sprintf("The tag recommendation service returned status %d.", resp.StatusCode),
			nil,
		)
	}

	var result recommendResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, apierror.WrapError(apierror.ErrTagRecommendationUnavailable, "Failed to decode the tag recommendation response.", err)
	}

	tags := make([]string, 0, len(result.Tags))
	for _, tag := range result.Tags {
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	logger.Debug().Strs("tags", tags).Msg("Tags recommended")
	return tags, nil
}
