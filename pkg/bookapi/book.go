package bookapi

// Book 外部目录中的一本图书，只读，不持久化
type Book struct {
	Title            string `json:"title"`
	AlternativeTitle string `json:"alternativeTitle"` // 源数据中可能缺失，缺失时为空字符串
	Author           string `json:"author"`
	URL              string `json:"url"` // 图书详情页
}
