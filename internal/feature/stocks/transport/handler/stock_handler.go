// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/stocks/domain/entity"
	"finstock_backend/internal/feature/stocks/transport/http/dto"
)

// StockUsecase は銘柄カタログ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockUsecase interface {
	List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error)
	GetByID(ctx context.Context, id uint) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	Update(ctx context.Context, id uint, stock entity.Stock) error
	Delete(ctx context.Context, id uint) error
}

// StockHandler は銘柄カタログのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は銘柄一覧を取得するAPIです。
//
// GET /api/stock?symbol=&companyName=&sortBy=&isDescending=
func (h *StockHandler) List(c *gin.Context) {
	var q dto.StockListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apperr.BadRequest(c, err)
		return
	}

	stocks, err := h.uc.List(c.Request.Context(), entity.StockQuery{
		Symbol:      q.Symbol,
		CompanyName: q.CompanyName,
		SortBy:      q.SortBy,
		Descending:  q.IsDescending,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// GetByID はIDで銘柄を1件取得するAPIです。紐付くコメントも含めて返します。
// 存在しない場合は404を返します。
func (h *StockHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stock, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// Create は銘柄を新規登録するAPIです。成功時は201と採番済みエンティティを返します。
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, err)
		return
	}

	stock := entity.Stock{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	}
	if err := h.uc.Create(c.Request.Context(), &stock); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, stock)
}

// Update は銘柄を全フィールド更新するAPIです。存在しない場合は404を返します。
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, err)
		return
	}

	stock := entity.Stock{
		ID:          id,
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	}
	if err := h.uc.Update(c.Request.Context(), id, stock); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// Delete は銘柄を削除するAPIです。成功時は204、存在しない場合は404を返します。
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID はパスパラメータを数値IDとしてパースします。不正な場合は400を書き込みます。
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		apperr.Respond(c, apperr.InvalidArgument("id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
