// Package ginx 提供 gin 框架的 handler 适配器，支持自动参数绑定和统一的响应/错误渲染
//
// 支持的 handler 函数签名：
//
//	// 有参数，有返回值，有 error
//	func(c *gin.Context, args *Args) (resp, error)
//
//	// 无参数，有返回值，有 error
//	func(c *gin.Context) (resp, error)
//
//	// 无参数，只有返回值
//	func(c *gin.Context) resp
//
// 参数按 JSON Body > URI > Query 的顺序绑定，若参数实现了 IsValid() error 会在调用 handler 前校验。
// 错误如果是 *apierror.Error，会按其 HTTPStatus 渲染为 apierror.ErrorResponse，并带上请求 ID。
//
// 使用示例：
//
//	router.POST("/posts/create", ginx.Adapt5(func(c *gin.Context, args *CreatePostRequest) (*Post, error) {
//	    return svc.CreatePost(c, args)
//	}))
package ginx
