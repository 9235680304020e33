// Package bookapi 是外部图书目录 API 的客户端
//
// 外部 API 返回弱类型的多层嵌套 JSON：
//
//	{"response": {"body": {"items": {"item": [ {...}, {...} ]}}}}
//
// Parse 逐层校验结构，任何一层不是对象（item 不是数组）时返回带层级信息的错误，
// 可以通过 StageOf 取回出错的层级（response/body/items/item）。
// Filter 根据推荐标签在图书的 alternativeTitle 中做大小写敏感的子串匹配，并限制结果数量。
package bookapi
