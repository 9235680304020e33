package bookapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jimyag/shelf/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(&Config{BaseURL: srv.URL + "/openapi/books?_type=json", ServiceKey: "secret-key"})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(&Config{})
	assert.Error(t, err)

	client, err := New(&Config{BaseURL: "https://books.example.com/api"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, client.pageSize)
	assert.Equal(t, DefaultPageNo, client.pageNo)
}

func TestHTTPClient_FetchAllBooks(t *testing.T) {
	t.Parallel()

	t.Run("sends credentials and paging", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/openapi/books", r.URL.Path)
			assert.Equal(t, "secret-key", r.URL.Query().Get("serviceKey"))
			assert.Equal(t, "100", r.URL.Query().Get("numOfRows"))
			assert.Equal(t, "150", r.URL.Query().Get("pageNo"))
			assert.Equal(t, "json", r.URL.Query().Get("_type"))
			_, _ = w.Write([]byte(`{"response":{"body":{"items":{"item":[{"title":"t","alternativeTitle":"ocean","author":"a","url":"u"}]}}}}`))
		})

		books, err := client.FetchAllBooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Book{{Title: "t", AlternativeTitle: "ocean", Author: "a", URL: "u"}}, books)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.FetchAllBooks(context.Background())
		assert.True(t, errors.Is(err, apierror.ErrBookCatalogResponseNull))
	})

	t.Run("json null body", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(" null \n"))
		})

		_, err := client.FetchAllBooks(context.Background())
		assert.True(t, errors.Is(err, apierror.ErrBookCatalogResponseNull))
	})

	t.Run("item is an object", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":{"body":{"items":{"item":{"title":"only one"}}}}}`))
		})

		_, err := client.FetchAllBooks(context.Background())
		stage, ok := StageOf(err)
		assert.True(t, ok)
		assert.Equal(t, StageItem, stage)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<response><body/></response>`))
		})

		_, err := client.FetchAllBooks(context.Background())
		assert.True(t, errors.Is(err, apierror.ErrBookCatalogResponseMalformed))
	})

	t.Run("upstream error status", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "SERVICE KEY IS NOT REGISTERED ERROR", http.StatusUnauthorized)
		})

		_, err := client.FetchAllBooks(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apierror.ErrBookCatalogUnavailable))

		var apiErr *apierror.Error
		require.True(t, errors.As(err, &apiErr))
		assert.NotContains(t, apiErr.Message, "SERVICE KEY")
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := srv.URL
		srv.Close()

		client, err := New(&Config{BaseURL: baseURL})
		require.NoError(t, err)

		_, err = client.FetchAllBooks(context.Background())
		assert.True(t, errors.Is(err, apierror.ErrBookCatalogUnavailable))
	})
}
