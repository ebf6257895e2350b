package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finstock_backend/internal/api"
	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/comments/domain/entity"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockCommentUsecase はCommentUsecaseインターフェースのモック実装です。
type mockCommentUsecase struct {
	CreateFunc  func(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error)
	ListFunc    func(ctx context.Context) ([]entity.Comment, error)
	GetByIDFunc func(ctx context.Context, id uint) (*entity.Comment, error)
	UpdateFunc  func(ctx context.Context, id uint, title, content string) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockCommentUsecase) Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stockID, title, content)
	}
	return nil, apperr.NotFound("stock does not exist")
}

func (m *mockCommentUsecase) List(ctx context.Context) ([]entity.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCommentUsecase) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperr.NotFound("comment not found")
}

func (m *mockCommentUsecase) Update(ctx context.Context, id uint, title, content string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, title, content)
	}
	return nil
}

func (m *mockCommentUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newCommentRouter(uc *mockCommentUsecase) *gin.Engine {
	h := NewCommentHandler(uc)
	r := gin.New()
	r.GET("/api/comment", h.List)
	r.GET("/api/comment/:id", h.GetByID)
	r.POST("/api/comment/:stockId", h.Create)
	r.PATCH("/api/comment/:id", h.Update)
	r.DELETE("/api/comment/:id", h.Delete)
	return r
}

// TestCommentHandler_Create はコメント作成APIの各種シナリオを検証します。
// 存在しない銘柄への投稿は404になり、コメントは作成されません。
func TestCommentHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		requestBody     gin.H
		mockCreate      func(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error)
		expectedStatus  int
		expectedDetails string
	}{
		{
			name:        "success: comment bound to stock",
			path:        "/api/comment/5",
			requestBody: gin.H{"title": "Good pick", "content": "Long term buy"},
			mockCreate: func(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
				return &entity.Comment{ID: 10, Title: title, Content: content, StockID: &stockID}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "failure: missing stock returns 404",
			path:            "/api/comment/999999",
			requestBody:     gin.H{"title": "Good pick", "content": "Long term buy"},
			mockCreate:      nil, // default mock signals not found
			expectedStatus:  http.StatusNotFound,
			expectedDetails: "stock does not exist",
		},
		{
			name:           "failure: title over 50 chars returns 400",
			path:           "/api/comment/5",
			requestBody:    gin.H{"title": strings.Repeat("a", 51), "content": "ok"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: content over 150 chars returns 400",
			path:           "/api/comment/5",
			requestBody:    gin.H{"title": "ok", "content": strings.Repeat("a", 151)},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: non-numeric stock id returns 400",
			path:           "/api/comment/abc",
			requestBody:    gin.H{"title": "ok", "content": "ok"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCommentRouter(&mockCommentUsecase{CreateFunc: tt.mockCreate})

			body, _ := json.Marshal(tt.requestBody)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			switch tt.expectedStatus {
			case http.StatusCreated:
				var created entity.Comment
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
				require.NotNil(t, created.StockID)
				assert.Equal(t, uint(5), *created.StockID)
			case http.StatusNotFound:
				var errBody api.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
				assert.Equal(t, "resource not found", errBody.Message)
				assert.Equal(t, tt.expectedDetails, errBody.Details)
			}
		})
	}
}

func TestCommentHandler_List(t *testing.T) {
	router := newCommentRouter(&mockCommentUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Comment, error) {
			return []entity.Comment{{ID: 1, Title: "Good pick"}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comment", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []entity.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}

func TestCommentHandler_GetByID(t *testing.T) {
	router := newCommentRouter(&mockCommentUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comment/999999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestCommentHandler_Update は更新成功時にペイロードがエコーバックされることを検証します。
func TestCommentHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		mockUpdate     func(ctx context.Context, id uint, title, content string) error
		expectedStatus int
	}{
		{
			name:           "success: payload echoed back",
			mockUpdate:     func(ctx context.Context, id uint, title, content string) error { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure: missing comment returns 404",
			mockUpdate: func(ctx context.Context, id uint, title, content string) error {
				return apperr.NotFound("comment not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCommentRouter(&mockCommentUsecase{UpdateFunc: tt.mockUpdate})

			body, _ := json.Marshal(gin.H{"title": "Better pick", "content": "updated"})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/comment/1", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "Better pick")
			}
		})
	}
}

func TestCommentHandler_Delete(t *testing.T) {
	router := newCommentRouter(&mockCommentUsecase{
		DeleteFunc: func(ctx context.Context, id uint) error { return nil },
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/comment/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
