package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finstock_backend/internal/api"
	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/stocks/domain/entity"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockStockUsecase はStockUsecaseインターフェースのモック実装です。
type mockStockUsecase struct {
	ListFunc    func(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error)
	GetByIDFunc func(ctx context.Context, id uint) (*entity.Stock, error)
	CreateFunc  func(ctx context.Context, stock *entity.Stock) error
	UpdateFunc  func(ctx context.Context, id uint, stock entity.Stock) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockStockUsecase) List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockStockUsecase) GetByID(ctx context.Context, id uint) (*entity.Stock, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperr.NotFound("stock not found")
}

func (m *mockStockUsecase) Create(ctx context.Context, stock *entity.Stock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stock)
	}
	return nil
}

func (m *mockStockUsecase) Update(ctx context.Context, id uint, stock entity.Stock) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, stock)
	}
	return nil
}

func (m *mockStockUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newStockRouter(uc *mockStockUsecase) *gin.Engine {
	h := NewStockHandler(uc)
	r := gin.New()
	r.GET("/api/stock", h.List)
	r.GET("/api/stock/:id", h.GetByID)
	r.POST("/api/stock", h.Create)
	r.PUT("/api/stock/:id", h.Update)
	r.DELETE("/api/stock/:id", h.Delete)
	return r
}

func TestStockHandler_List(t *testing.T) {
	var captured entity.StockQuery
	router := newStockRouter(&mockStockUsecase{
		ListFunc: func(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error) {
			captured = query
			return []entity.Stock{{ID: 1, Symbol: "MSFT", CompanyName: "Microsoft"}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock?symbol=MS&companyName=Micro&sortBy=symbol&isDescending=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.StockQuery{Symbol: "MS", CompanyName: "Micro", SortBy: "symbol", Descending: true}, captured)

	var body []entity.Stock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "MSFT", body[0].Symbol)
}

func TestStockHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockGetByID    func(ctx context.Context, id uint) (*entity.Stock, error)
		expectedStatus int
	}{
		{
			name: "success: stock found",
			path: "/api/stock/1",
			mockGetByID: func(ctx context.Context, id uint) (*entity.Stock, error) {
				return &entity.Stock{ID: id, Symbol: "MSFT"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing stock returns 404",
			path:           "/api/stock/999999",
			mockGetByID:    nil, // default mock signals not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: non-numeric id returns 400",
			path:           "/api/stock/abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newStockRouter(&mockStockUsecase{GetByIDFunc: tt.mockGetByID})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusNotFound {
				var body api.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "resource not found", body.Message)
				assert.Equal(t, tt.path, body.Path)
			}
		})
	}
}

func TestStockHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		expectedStatus int
	}{
		{
			name: "success: valid payload returns 201 with assigned id",
			requestBody: gin.H{
				"symbol": "MSFT", "companyName": "Microsoft", "purchase": 300.00,
				"lastDiv": 2.00, "industry": "Technology", "marketCap": 2000000000000,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing required fields returns 400",
			requestBody:    gin.H{"symbol": "MSFT"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: symbol over 20 chars returns 400",
			requestBody: gin.H{
				"symbol": "VERYLONGSYMBOLNAME-OVER-20", "companyName": "X", "purchase": 1.0, "industry": "Y",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newStockRouter(&mockStockUsecase{
				CreateFunc: func(ctx context.Context, stock *entity.Stock) error {
					stock.ID = 42
					return nil
				},
			})

			body, _ := json.Marshal(tt.requestBody)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var created entity.Stock
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
				assert.Equal(t, uint(42), created.ID)
				assert.Equal(t, "MSFT", created.Symbol)
			}
		})
	}
}

func TestStockHandler_Update(t *testing.T) {
	payload := gin.H{
		"symbol": "MSFT", "companyName": "Microsoft", "purchase": 310.00,
		"lastDiv": 2.00, "industry": "Technology", "marketCap": 2000000000000,
	}

	tests := []struct {
		name           string
		mockUpdate     func(ctx context.Context, id uint, stock entity.Stock) error
		expectedStatus int
	}{
		{
			name:           "success: updated stock echoed back",
			mockUpdate:     func(ctx context.Context, id uint, stock entity.Stock) error { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure: missing stock returns 404",
			mockUpdate: func(ctx context.Context, id uint, stock entity.Stock) error {
				return apperr.NotFound("stock not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newStockRouter(&mockStockUsecase{UpdateFunc: tt.mockUpdate})

			body, _ := json.Marshal(payload)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/stock/1", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestStockHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockDelete     func(ctx context.Context, id uint) error
		expectedStatus int
	}{
		{
			name:           "success: returns 204 with empty body",
			mockDelete:     func(ctx context.Context, id uint) error { return nil },
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "failure: missing stock returns 404",
			mockDelete: func(ctx context.Context, id uint) error {
				return apperr.NotFound("stock not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newStockRouter(&mockStockUsecase{DeleteFunc: tt.mockDelete})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/stock/1", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
