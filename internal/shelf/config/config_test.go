package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv 设置必需的外部服务地址
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SHELF_CONFIG", "")
	t.Setenv("SHELF_TAG_RECOMMENDER_URL", "http://tags.local/recommend")
	t.Setenv("SHELF_BOOK_API_BASE_URL", "http://books.local/list")
}

func TestNew_Defaults(t *testing.T) {
	setRequiredEnv(t)
	dataDir := t.TempDir()
	t.Setenv("SHELF_DATA_DIR", dataDir)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7778", cfg.Address)
	assert.Equal(t, filepath.Join(dataDir, "shelf.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 100, cfg.BookAPI.PageSize)
	assert.Equal(t, 150, cfg.BookAPI.PageNo)
}

func TestNew_YAMLThenEnv(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "shelf.yaml")
	err := os.WriteFile(path, []byte(`
address: 127.0.0.1:9000
log_level: debug
http_timeout: 3s
book_api:
  service_key: from-file
  page_size: 20
`), 0o644)
	require.NoError(t, err)

	t.Setenv("SHELF_CONFIG", path)
	t.Setenv("SHELF_BOOK_API_SERVICE_KEY", "from-env")
	t.Setenv("SHELF_DB_PATH", "/tmp/custom.db")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "from-env", cfg.BookAPI.ServiceKey)
	assert.Equal(t, 20, cfg.BookAPI.PageSize)
	assert.Equal(t, 150, cfg.BookAPI.PageNo)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}

func TestNew_Errors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHELF_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := New()
		assert.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHELF_HTTP_TIMEOUT", "soon")

		_, err := New()
		assert.Error(t, err)
	})

	t.Run("missing recommender url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHELF_TAG_RECOMMENDER_URL", "")

		_, err := New()
		assert.ErrorContains(t, err, "SHELF_TAG_RECOMMENDER_URL")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				HTTPTimeout:    time.Second,
				TagRecommender: TagRecommenderConfig{URL: "http://a"},
				BookAPI:        BookAPIConfig{BaseURL: "http://b"},
			},
		},
		{
			name: "missing book api",
			cfg: Config{
				HTTPTimeout:    time.Second,
				TagRecommender: TagRecommenderConfig{URL: "http://a"},
			},
			wantErr: true,
		},
		{
			name: "zero timeout",
			cfg: Config{
				TagRecommender: TagRecommenderConfig{URL: "http://a"},
				BookAPI:        BookAPIConfig{BaseURL: "http://b"},
			},
			wantErr: true,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
