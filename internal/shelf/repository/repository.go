// Package repository 提供数据持久化层实现
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jimyag/shelf/internal/shelf/repository/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动，不需要 CGO
)

// Repository 数据库仓库
type Repository struct {
	db *gorm.DB
}

// New 创建新的 Repository 实例
func New(dbPath string) (*Repository, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// 写事务较多，等待锁而不是立即返回 SQLITE_BUSY
	dsn := dbPath + "?_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
		Conn:       sqlDB,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Member{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return &Repository{db: db}, nil
}

// DB 返回 GORM 数据库实例
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// WithContext 返回带上下文的数据库实例
func (r *Repository) WithContext(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Transaction 在一个事务中执行 fn，fn 返回错误时整体回滚
// fn 收到的 Repository 绑定在事务上，事务内的所有读写都必须通过它进行
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// Members 返回成员仓库
func (r *Repository) Members() MemberRepository {
	return NewMemberRepository(r.db)
}

// Posts 返回文章仓库
func (r *Repository) Posts() PostRepository {
	return NewPostRepository(r.db)
}

// Tags 返回标签仓库
func (r *Repository) Tags() TagRepository {
	return NewTagRepository(r.db)
}

// PostTags 返回文章标签关联仓库
func (r *Repository) PostTags() PostTagRepository {
	return NewPostTagRepository(r.db)
}

// Close 关闭数据库连接
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// createIndexes 创建额外的索引和唯一约束
func createIndexes(db *gorm.DB) error {
	// tags 表的唯一约束（同名标签只能有一行）
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name_unique
		ON tags(name)
	`).Error; err != nil {
		return fmt.Errorf("create unique index on tags: %w", err)
	}

	// post_tags 表的唯一约束（同一文章的同一位置只能有一条关联）
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_post_tags_position_unique
		ON post_tags(post_id, position)
	`).Error; err != nil {
		return fmt.Errorf("create unique index on post_tags: %w", err)
	}

	return nil
}
