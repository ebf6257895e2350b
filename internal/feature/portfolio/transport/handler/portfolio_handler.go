// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finstock_backend/internal/api"
	"finstock_backend/internal/apperr"
	stockentity "finstock_backend/internal/feature/stocks/domain/entity"
	jwtmw "finstock_backend/internal/platform/jwt"
)

// PortfolioUsecase はポートフォリオ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
// 認証済みユーザー名はグローバルな状態からではなく、常に明示的な引数として渡します。
type PortfolioUsecase interface {
	List(ctx context.Context, username string) ([]stockentity.Stock, error)
	Add(ctx context.Context, username, symbol string) error
	Remove(ctx context.Context, username, symbol string) error
}

// PortfolioHandler はポートフォリオのHTTPリクエストを処理します。
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler は新しい PortfolioHandler を作成します。
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// List は認証済みユーザーのポートフォリオ銘柄一覧を返すAPIです。
//
// GET /api/portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	stocks, err := h.uc.List(c.Request.Context(), username)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// Add は認証済みユーザーのポートフォリオに銘柄を追加するAPIです。
// 銘柄が存在しない場合は404、既に追加済みの場合は400を返します。
//
// POST /api/portfolio?symbol=MSFT
func (h *PortfolioHandler) Add(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	symbol := c.Query("symbol")

	if err := h.uc.Add(c.Request.Context(), username, symbol); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "stock added to portfolio"})
}

// Remove は認証済みユーザーのポートフォリオから銘柄を取り除くAPIです。
//
// DELETE /api/portfolio?symbol=MSFT
func (h *PortfolioHandler) Remove(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	symbol := c.Query("symbol")

	if err := h.uc.Remove(c.Request.Context(), username, symbol); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "stock removed from portfolio"})
}

// currentUsername はJWTミドルウェアが設定したユーザー名を取り出します。
// 未設定の場合は401を書き込みます。以降の層にはこの値を引数として渡します。
func currentUsername(c *gin.Context) (string, bool) {
	username := c.GetString(jwtmw.ContextUsername)
	if username == "" {
		apperr.Respond(c, apperr.Unauthorized("authentication required"))
		return "", false
	}
	return username, true
}
