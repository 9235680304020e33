package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/shelf/internal/shelf/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	member *Member
	post   *Post
	book   *Book
}

func New(
	address string,
	memberService *service.MemberService,
	postService *service.PostService,
	bookService *service.BookService,
) (*API, error) {
	engine := newEngine()
	api := &API{
		engine: engine,
		member: NewMember(memberService),
		post:   NewPost(postService),
		book:   NewBook(bookService),
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := engine.Group("/api")
	api.member.RegisterRoutes(group.Group("/members"))
	api.post.RegisterRoutes(group.Group("/posts"))
	api.book.RegisterRoutes(group.Group("/books"))

	api.server = &http.Server{
		Addr:    address,
		Handler: engine,
	}
	return api, nil
}

// newEngine 创建带有公共中间件的 gin engine
func newEngine() *gin.Engine {
	engine := gin.New()
	// 让 gin.Context.Value 回退到 Request.Context()，handler 中可以直接 zerolog.Ctx(c)
	engine.ContextWithFallback = true
	engine.Use(gin.Recovery(), requestContext(), recordMetrics())
	return engine
}

// Handler 返回 HTTP handler
func (a *API) Handler() http.Handler {
	return a.engine
}

func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "Shelf API"
}
