package ginx

import (
	"github.com/gin-gonic/gin"
)

// bindArgs 绑定请求参数到 args 结构体
// 优先级：JSON Body > URI 参数 > Query 参数
func bindArgs(ctx *gin.Context, args any) error {
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(args); err != nil {
			return err
		}
		_ = ctx.ShouldBindUri(args)
		return nil
	}

	if len(ctx.Params) > 0 {
		if err := ctx.ShouldBindUri(args); err != nil {
			return err
		}
	}
	return ctx.ShouldBindQuery(args)
}
