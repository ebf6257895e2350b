package router

import (
	"github.com/gin-gonic/gin"

	authhandler "finstock_backend/internal/feature/auth/transport/handler"
	commenthandler "finstock_backend/internal/feature/comments/transport/handler"
	portfoliohandler "finstock_backend/internal/feature/portfolio/transport/handler"
	stockhandler "finstock_backend/internal/feature/stocks/transport/handler"
	"finstock_backend/internal/platform/http/handler"
	jwtmw "finstock_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, stocks *stockhandler.StockHandler,
	comments *commenthandler.CommentHandler, portfolio *portfoliohandler.PortfolioHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// アカウント登録・ログイン（JWT 発行）
	account := api.Group("/account")
	{
		account.POST("/register", auth.Register)
		account.POST("/login", auth.Login)
	}

	// 銘柄カタログ
	stock := api.Group("/stock")
	{
		stock.GET("", stocks.List)
		stock.GET("/:id", stocks.GetByID)
		stock.POST("", stocks.Create)
		stock.PUT("/:id", stocks.Update)
		stock.DELETE("/:id", stocks.Delete)
	}

	// コメント
	comment := api.Group("/comment")
	{
		comment.GET("", comments.List)
		comment.GET("/:id", comments.GetByID)
		comment.POST("/:stockId", comments.Create)
		comment.PATCH("/:id", comments.Update)
		comment.DELETE("/:id", comments.Delete)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	pf := api.Group("/portfolio")
	pf.Use(jwtmw.AuthRequired())
	{
		pf.GET("", portfolio.List)
		pf.POST("", portfolio.Add)
		pf.DELETE("", portfolio.Remove)
	}

	return r
}
