// Package idgen 提供递增 ID 生成器
//
// 使用 Sonyflake 算法生成全局唯一且时间有序的 64 位 ID，并加上资源前缀：
//   - 成员 ID: mem-{递增数字}
//   - 文章 ID: post-{递增数字}
//   - 标签 ID: tag-{递增数字}
//   - 文章标签关联 ID: pt-{递增数字}
//
// 使用方式：
//
//	gen := idgen.New()
//	postID, err := gen.GeneratePostID()
//	// postID: "post-1234567890"
//
// 或使用包级别的便捷函数（默认生成器）：
//
//	tagID, err := idgen.GenerateTagID()
package idgen
