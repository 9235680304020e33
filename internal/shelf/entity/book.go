package entity

// Book 图书目录条目，每次读取都从外部目录重新获取，不落库
type Book struct {
	Title            string `json:"title"`
	AlternativeTitle string `json:"alternativeTitle"` // 匹配标签时检索的字段，外部数据可能缺失
	Author           string `json:"author"`
	URL              string `json:"url"` // 详情页地址
}

// DescribeBooksResponse 完整图书目录响应
type DescribeBooksResponse struct {
	Books []Book `json:"books"`
}

// RecommendBooksRequest 为文章推荐图书请求
type RecommendBooksRequest struct {
	PostID string `json:"postId" binding:"required"`
}

// RecommendBooksResponse 为文章推荐图书响应，最多 3 本
type RecommendBooksResponse struct {
	Books []Book `json:"books"`
}
