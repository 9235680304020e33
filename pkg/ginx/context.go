package ginx

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey 请求 ID 在 gin.Context 中的 key
const RequestIDKey = "request_id"

// SetRequestID 记录当前请求的 ID，错误响应会带上它
func SetRequestID(ctx *gin.Context, requestID string) {
	ctx.Set(RequestIDKey, requestID)
}

// RequestID 返回当前请求的 ID，不存在时返回空字符串
func RequestID(ctx *gin.Context) string {
	return ctx.GetString(RequestIDKey)
}
