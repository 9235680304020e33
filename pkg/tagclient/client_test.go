package tagclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New("", 0)
	assert.Error(t, err)

	client, err := New("http://recommender.local/tags", 0)
	require.NoError(t, err)
	assert.NotNil(t, client.httpClient)
}

func TestHTTPClient_RecommendTags(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		status   int
		body     string
		wantTags []string
		wantErr  error
	}{
		{
			name:     "ordered tags",
			status:   http.StatusOK,
			body:     `{"tags":["ocean","ecosystem"]}`,
			wantTags: []string{"ocean", "ecosystem"},
		},
		{
			name:     "duplicates preserved, blanks dropped",
			status:   http.StatusOK,
			body:     `{"tags":["sea","","sea"]}`,
			wantTags: []string{"sea", "sea"},
		},
		{
			name:     "empty recommendation",
			status:   http.StatusOK,
			body:     `{"tags":[]}`,
			wantTags: []string{},
		},
		{
			name:     "missing tags field",
			status:   http.StatusOK,
			body:     `{}`,
			wantTags: []string{},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: apierror.ErrTagRecommendationUnavailable,
		},
		{
			name:    "garbage body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: apierror.ErrTagRecommendationUnavailable,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"text":"I love ocean ecosystems"}`, string(body))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			client, err := New(srv.URL, 0)
			require.NoError(t, err)

			tags, err := client.RecommendTags(context.Background(), "I love ocean ecosystems")
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTags, tags)
		})
	}
}
