// Package apierror 提供统一的 API 错误类型，所有服务的错误都以稳定的错误码对外暴露
//
// JSON 错误响应格式：
//
//	{
//	    "errors": [
//	        {
//	            "code": "Post.NotFound",
//	            "message": "The post 'post-123' does not exist"
//	        }
//	    ],
//	    "requestID": "ea966190-f9aa-478e-9ede-example"
//	}
//
// 预定义错误（可在代码中直接使用，或通过 WrapError 携带上下文）：
//
//   - ErrMemberNotFound / ErrPostNotFound: 成员或文章不存在（404）
//   - ErrTagRecommendationEmpty: 标签推荐结果为空（400）
//   - ErrTagRecommendationUnavailable: 标签推荐服务调用失败（502）
//   - ErrBookCatalogNoResult: 没有与标签匹配的图书（404）
//   - ErrBookCatalogResponseNull: 图书 API 响应体为空（500）
//   - ErrBookCatalog*Malformed: 图书 API 响应在某一层结构不符合预期（500）
//   - ErrBookCatalogUnavailable: 图书 API 调用失败（502）
//   - ErrTagPersistence: 标签持久化失败（500）
//   - ErrInvalidParameter: 请求参数错误（400）
//   - ErrInternalError: 内部错误（500）
//
// 使用示例：
//
//	// 携带上下文的业务错误
//	err := apierror.WrapError(apierror.ErrPostNotFound, fmt.Sprintf("The post '%s' does not exist", id), dbErr)
//
//	// 判断错误类型
//	if errors.Is(err, apierror.ErrPostNotFound) { ... }
package apierror
