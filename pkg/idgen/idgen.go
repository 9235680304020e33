package idgen

import (
	"fmt"
	"sync"
	"time"

	"github.com/sony/sonyflake"
)

// Generator 递增 ID 生成器
type Generator struct {
	sf *sonyflake.Sonyflake
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// DefaultGenerator 返回默认的 ID 生成器
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = New()
	})
	return defaultGenerator
}

// New 创建新的 ID 生成器
func New() *Generator {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if sf == nil {
		// 无法获取机器 ID（例如没有私有 IP）时退回到当前时间作为起点
		sf = sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: time.Now(),
			MachineID: func() (uint16, error) { return 0, nil },
		})
	}

	return &Generator{
		sf: sf,
	}
}

func (g *Generator) generateIDWithPrefix(prefix, errorMsg string) (string, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errorMsg, err)
	}
	return fmt.Sprintf("%s-%d", prefix, id), nil
}

// GenerateMemberID 生成成员 ID（格式：mem-{递增 ID}）
func (g *Generator) GenerateMemberID() (string, error) {
	return g.generateIDWithPrefix("mem", "generate member ID")
}

// GeneratePostID 生成文章 ID（格式：post-{递增 ID}）
func (g *Generator) GeneratePostID() (string, error) {
	return g.generateIDWithPrefix("post", "generate post ID")
}

// GenerateTagID 生成标签 ID（格式：tag-{递增 ID}）
func (g *Generator) GenerateTagID() (string, error) {
	return g.generateIDWithPrefix("tag", "generate tag ID")
}

// GeneratePostTagID 生成文章标签关联 ID（格式：pt-{递增 ID}）
func (g *Generator) GeneratePostTagID() (string, error) {
	return g.generateIDWithPrefix("pt", "generate post tag ID")
}

// GenerateID 生成通用递增 ID
func (g *Generator) GenerateID() (uint64, error) {
	return g.sf.NextID()
}

// GenerateMemberID 使用默认生成器生成成员 ID
func GenerateMemberID() (string, error) {
	return DefaultGenerator().GenerateMemberID()
}

// GeneratePostID 使用默认生成器生成文章 ID
func GeneratePostID() (string, error) {
	return DefaultGenerator().GeneratePostID()
}

// GenerateTagID 使用默认生成器生成标签 ID
func GenerateTagID() (string, error) {
	return DefaultGenerator().GenerateTagID()
}

// GeneratePostTagID 使用默认生成器生成文章标签关联 ID
func GeneratePostTagID() (string, error) {
	return DefaultGenerator().GeneratePostTagID()
}
