package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Address 是 HTTP 服务监听地址
	// 可以通过环境变量 SHELF_ADDRESS 配置
	// 默认：0.0.0.0:7778
	Address string `yaml:"address"`

	// DataDir 是数据目录
	// 可以通过环境变量 SHELF_DATA_DIR 配置
	// 默认：~/.local/share/shelf
	DataDir string `yaml:"data_dir"`

	// DBPath 是 SQLite 数据库文件路径
	// 可以通过环境变量 SHELF_DB_PATH 配置
	// 默认：<DataDir>/shelf.db
	DBPath string `yaml:"db_path"`

	// LogLevel 日志级别：debug, info, warn, error
	// 可以通过环境变量 SHELF_LOG_LEVEL 配置
	LogLevel string `yaml:"log_level"`

	// HTTPTimeout 调用外部服务的超时时间
	// 可以通过环境变量 SHELF_HTTP_TIMEOUT 配置，例如 10s
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	TagRecommender TagRecommenderConfig `yaml:"tag_recommender"`
	BookAPI        BookAPIConfig        `yaml:"book_api"`
}

// TagRecommenderConfig 标签推荐服务配置
type TagRecommenderConfig struct {
	// URL 推荐接口地址，SHELF_TAG_RECOMMENDER_URL
	URL string `yaml:"url"`
}

// BookAPIConfig 图书目录服务配置
type BookAPIConfig struct {
	// BaseURL 目录接口地址，SHELF_BOOK_API_BASE_URL
	BaseURL string `yaml:"base_url"`
	// ServiceKey 接口凭证，SHELF_BOOK_API_SERVICE_KEY
	ServiceKey string `yaml:"service_key"`
	PageSize   int    `yaml:"page_size"`
	PageNo     int    `yaml:"page_no"`
}

// New 按以下顺序加载配置，后者覆盖前者：
// 默认值、.env 文件、SHELF_CONFIG 指定的 YAML 文件、环境变量
func New() (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg := &Config{
		Address:     "0.0.0.0:7778",
		DataDir:     defaultDataDir(),
		LogLevel:    "info",
		HTTPTimeout: 10 * time.Second,
		BookAPI: BookAPIConfig{
			PageSize: 100,
			PageNo:   150,
		},
	}

	if path := os.Getenv("SHELF_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "shelf.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile 从 YAML 文件加载配置，文件中未出现的字段保持原值
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv 使用环境变量覆盖配置
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("SHELF_ADDRESS", &c.Address)
	setString("SHELF_DATA_DIR", &c.DataDir)
	setString("SHELF_DB_PATH", &c.DBPath)
	setString("SHELF_LOG_LEVEL", &c.LogLevel)
	setString("SHELF_TAG_RECOMMENDER_URL", &c.TagRecommender.URL)
	setString("SHELF_BOOK_API_BASE_URL", &c.BookAPI.BaseURL)
	setString("SHELF_BOOK_API_SERVICE_KEY", &c.BookAPI.ServiceKey)

	if v := os.Getenv("SHELF_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHELF_HTTP_TIMEOUT %q: %w", v, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.TagRecommender.URL == "" {
		return errors.New("tag recommender URL is required (SHELF_TAG_RECOMMENDER_URL)")
	}
	if c.BookAPI.BaseURL == "" {
		return errors.New("book API base URL is required (SHELF_BOOK_API_BASE_URL)")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}
	return nil
}

// defaultDataDir 获取默认数据目录
func defaultDataDir() string {
	// 使用用户主目录下的 .local/share/shelf
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "shelf")
	}

	// 如果无法获取主目录，使用当前目录下的 data
	return filepath.Join(".", "data")
}
