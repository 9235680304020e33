package bookapi

import (
	"errors"
	"fmt"

	"github.com/jimyag/shelf/pkg/apierror"
)

// Stage 响应解析失败时所在的嵌套层级
type Stage string

const (
	StageResponse Stage = "response"
	StageBody     Stage = "body"
	StageItems    Stage = "items"
	StageItem     Stage = "item"
)

var stageErrors = map[Stage]*apierror.Error{
	StageResponse: apierror.ErrBookCatalogResponseMalformed,
	StageBody:     apierror.ErrBookCatalogBodyMalformed,
	StageItems:    apierror.ErrBookCatalogItemsMalformed,
	StageItem:     apierror.ErrBookCatalogItemMalformed,
}

// malformed 返回指定层级的结构错误
func malformed(stage Stage, detail string) *apierror.Error {
	return apierror.WrapError(stageErrors[stage], stageErrors[stage].Message, fmt.Errorf("%s: %s", stage, detail))
}

// StageOf 返回结构错误对应的层级，err 不是结构错误时 ok 为 false
func StageOf(err error) (Stage, bool) {
	for _, stage := range []Stage{StageResponse, StageBody, StageItems, StageItem} {
		if errors.Is(err, stageErrors[stage]) {
			return stage, true
		}
	}
	return "", false
}

// Parse 将解码后的原始响应转换为图书列表
// 期望结构为 {response: {body: {items: {item: [ {...}, ... ]}}}}
func Parse(raw any) ([]Book, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed(StageResponse, fmt.Sprintf("root is %T, not an object", raw))
	}

	response, ok := root["response"].(map[string]any)
	if !ok {
		return nil, malformed(StageResponse, fmt.Sprintf("got %T", root["response"]))
	}

	body, ok := response["body"].(map[string]any)
	if !ok {
		return nil, malformed(StageBody, fmt.Sprintf("got %T", response["body"]))
	}

	items, ok := body["items"].(map[string]any)
	if !ok {
		return nil, malformed(StageItems, fmt.Sprintf("got %T", body["items"]))
	}

	list, ok := items["item"].([]any)
	if !ok {
		return nil, malformed(StageItem, fmt.Sprintf("got %T, not an array", items["item"]))
	}

	books := make([]Book, 0, len(list))
	for i, elem := range list {
		record, ok := elem.(map[string]any)
		if !ok {
			return nil, malformed(StageItem, fmt.Sprintf("element %d is %T, not an object", i, elem))
		}
		books = append(books, Book{
			Title:            stringField(record, "title"),
			AlternativeTitle: stringField(record, "alternativeTitle"),
			Author:           stringField(record, "author"),
			URL:              stringField(record, "url"),
		})
	}
	return books, nil
}

// stringField 取出字符串字段，缺失、null 或非字符串时返回空字符串
func stringField(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}
