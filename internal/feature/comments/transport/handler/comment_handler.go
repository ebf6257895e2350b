// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/comments/domain/entity"
	"finstock_backend/internal/feature/comments/transport/http/dto"
)

// CommentUsecase はコメント操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CommentUsecase interface {
	Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error)
	List(ctx context.Context) ([]entity.Comment, error)
	GetByID(ctx context.Context, id uint) (*entity.Comment, error)
	Update(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
}

// CommentHandler はコメントのHTTPリクエストを処理します。
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler は新しい CommentHandler を作成します。
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// List はコメント一覧を取得するAPIです。
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.uc.List(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetByID はIDでコメントを1件取得するAPIです。存在しない場合は404を返します。
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Create は指定された銘柄にコメントを作成するAPIです。
// 銘柄が存在しない場合は404を返し、コメントは作成されません。
//
// POST /api/comment/:stockId
func (h *CommentHandler) Create(c *gin.Context) {
	stockID, ok := pathID(c, "stockId")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, err)
		return
	}

	comment, err := h.uc.Create(c.Request.Context(), stockID, req.Title, req.Content)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update はコメントのタイトルと本文を更新するAPIです。存在しない場合は404を返します。
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, err)
		return
	}

	if err := h.uc.Update(c.Request.Context(), id, req.Title, req.Content); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Delete はコメントを削除するAPIです。成功時は204、存在しない場合は404を返します。
func (h *CommentHandler) Delete(c *gin.Context) {
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
		apperr.Respond(c, apperr.InvalidArgument(name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
