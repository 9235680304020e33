package apierror

import "net/http"

// 资源不存在
var (
	ErrMemberNotFound = &Error{
		Code:       "Member.NotFound",
		Message:    "The specified member does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	ErrPostNotFound = &Error{
		Code:       "Post.NotFound",
		Message:    "The specified post does not exist.",
		HTTPStatus: http.StatusNotFound,
	}
)

// 标签推荐与标签持久化
var (
	// ErrTagRecommendationEmpty 推荐服务没有为内容返回任何标签
	ErrTagRecommendationEmpty = &Error{
		Code:       "TagRecommendation.Empty",
		Message:    "No tags could be recommended for the post contents.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrTagRecommendationUnavailable 推荐服务调用失败或返回了非预期的响应
	ErrTagRecommendationUnavailable = &Error{
		Code:       "TagRecommendation.Unavailable",
		Message:    "The tag recommendation service could not be reached.",
		HTTPStatus: http.StatusBadGateway,
	}

	ErrTagPersistence = &Error{
		Code:       "Tag.PersistenceFailure",
		Message:    "Failed to persist tags for the post.",
		HTTPStatus: http.StatusInternalServerError,
	}
)

// 外部图书目录
var (
	// ErrBookCatalogNoResult 没有任何图书的副标题包含推荐标签
	ErrBookCatalogNoResult = &Error{
		Code:       "BookCatalog.NoResult",
		Message:    "No books matched the recommended tags.",
		HTTPStatus: http.StatusNotFound,
	}

	ErrBookCatalogResponseNull = &Error{
		Code:       "BookCatalog.ResponseNull",
		Message:    "The book catalog API returned an empty response body.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrBookCatalogResponseMalformed = &Error{
		Code:       "BookCatalog.ResponseMalformed",
		Message:    "The response field of the book catalog API is malformed.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrBookCatalogBodyMalformed = &Error{
		Code:       "BookCatalog.BodyMalformed",
		Message:    "The body field of the book catalog API is malformed.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrBookCatalogItemsMalformed = &Error{
		Code:       "BookCatalog.ItemsMalformed",
		Message:    "The items field of the book catalog API is malformed.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrBookCatalogItemMalformed = &Error{
		Code:       "BookCatalog.ItemMalformed",
		Message:    "The item field of the book catalog API is malformed.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrBookCatalogUnavailable = &Error{
		Code:       "BookCatalog.Unavailable",
		Message:    "The book catalog API could not be reached.",
		HTTPStatus: http.StatusBadGateway,
	}
)

// 通用错误
var (
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "A parameter specified in the request is not valid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrInternalError 发生了内部错误
	ErrInternalError = &Error{
		Code:       "InternalError",
		Message:    "An internal error has occurred.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
