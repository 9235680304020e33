package bookapi

import "strings"

// Filter 保留 alternativeTitle 中包含任一标签的图书
// 匹配是大小写敏感的子串匹配，结果保持目录原有顺序，最多返回 limit 本。
// 空标签会被忽略，没有匹配时返回空切片而不是 nil。
func Filter(books []Book, tags []string, limit int) []Book {
	matched := make([]Book, 0)
	if limit <= 0 {
		return matched
	}

	for _, book := range books {
		if !containsAny(book.AlternativeTitle, tags) {
			continue
		}
		matched = append(matched, book)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

func containsAny(s string, tags []string) bool {
	for _, tag := range tags {
		if tag != "" && strings.Contains(s, tag) {
			return true
		}
	}
	return false
}
