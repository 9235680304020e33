package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/shelf/pkg/apierror"
)

// renderResponse 渲染成功响应
func renderResponse(ctx *gin.Context, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	// handler 可以通过 c.Status 预先指定成功状态码（例如 201）
	status := ctx.Writer.Status()
	if v, ok := response.(string); ok {
		ctx.String(status, v)
		return
	}
	ctx.JSON(status, response)
}

// renderError 渲染错误响应
// *apierror.Error 使用其自带的 HTTP 状态码，其他错误一律作为内部错误返回，不暴露原始错误信息
func renderError(ctx *gin.Context, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.WrapError(apierror.ErrInternalError, apierror.ErrInternalError.Message, err)
	}

	ctx.JSON(apierror.HTTPStatusOf(apiErr), apierror.NewErrorResponse(RequestID(ctx), apiErr))
}
