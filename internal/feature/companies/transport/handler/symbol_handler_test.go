package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/companies/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListSymbolsFunc        func(ctx context.Context) ([]entity.Company, string)
	ConfirmSymbolsFunc     func(ctx context.Context, companies []entity.Company) (int, error)
	ConfirmSymbolBatchFunc func(ctx context.Context, token string) ([]entity.Company, int, error)
}

func (m *mockSymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Company, string) {
	if m.ListSymbolsFunc != nil {
		return m.ListSymbolsFunc(ctx)
	}
	return nil, ""
}

func (m *mockSymbolUsecase) ConfirmSymbols(ctx context.Context, companies []entity.Company) (int, error) {
	if m.ConfirmSymbolsFunc != nil {
		return m.ConfirmSymbolsFunc(ctx, companies)
	}
	return 0, errors.New("ConfirmSymbolsFunc is not implemented")
}

func (m *mockSymbolUsecase) ConfirmSymbolBatch(ctx context.Context, token string) ([]entity.Company, int, error) {
	if m.ConfirmSymbolBatchFunc != nil {
		return m.ConfirmSymbolBatchFunc(ctx, token)
	}
	return nil, 0, errors.New("ConfirmSymbolBatchFunc is not implemented")
}

func TestNewSymbolHandler(t *testing.T) {
	t.Parallel()

	h := NewSymbolHandler(&mockSymbolUsecase{})

	assert.NotNil(t, h, "handler should not be nil")
	assert.NotNil(t, h.uc, "usecase should not be nil")
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		listFunc     func(ctx context.Context) ([]entity.Company, string)
		expectedBody string
	}{
		{
			name: "success: returns companies and token",
			listFunc: func(ctx context.Context) ([]entity.Company, string) {
				return []entity.Company{{Symbol: "AAPL", Name: "Apple", IsEnabled: true, Type: "cs"}}, "tok-1"
			},
			expectedBody: `{"token":"tok-1","companies":[{"symbol":"AAPL","name":"Apple","isEnabled":true,"type":"cs"}]}`,
		},
		{
			name: "degraded: empty listing without token",
			listFunc: func(ctx context.Context) ([]entity.Company, string) {
				return []entity.Company{}, ""
			},
			expectedBody: `{"companies":[]}`,
		},
		{
			name:         "degraded: nil listing renders empty array",
			listFunc:     func(ctx context.Context) ([]entity.Company, string) { return nil, "" },
			expectedBody: `{"companies":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.GET("/symbols", NewSymbolHandler(&mockSymbolUsecase{ListSymbolsFunc: tt.listFunc}).List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSymbolHandler_Populate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	apple := entity.Company{Symbol: "AAPL", Name: "Apple"}

	tests := []struct {
		name           string
		body           string
		mock           *mockSymbolUsecase
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: confirm by token",
			body: `{"token":"tok-1"}`,
			mock: &mockSymbolUsecase{
				ConfirmSymbolBatchFunc: func(ctx context.Context, token string) ([]entity.Company, int, error) {
					return []entity.Company{apple}, 1, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"saved":1,"companies":[{"symbol":"AAPL","name":"Apple","isEnabled":false}]}`,
		},
		{
			name: "success: confirm explicit companies",
			body: `{"companies":[{"symbol":"AAPL","name":"Apple"}]}`,
			mock: &mockSymbolUsecase{
				ConfirmSymbolsFunc: func(ctx context.Context, companies []entity.Company) (int, error) {
					if len(companies) != 1 || companies[0] != apple {
						return 0, errors.New("unexpected companies")
					}
					return 0, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"saved":0,"companies":[{"symbol":"AAPL","name":"Apple","isEnabled":false}]}`,
		},
		{
			name: "failure: unknown token",
			body: `{"token":"missing"}`,
			mock: &mockSymbolUsecase{
				ConfirmSymbolBatchFunc: func(ctx context.Context, token string) ([]entity.Company, int, error) {
					return nil, 0, usecase.ErrBatchNotFound
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"symbol batch not found"}`,
		},
		{
			name:           "failure: neither token nor companies",
			body:           `{}`,
			mock:           &mockSymbolUsecase{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"no companies to confirm"}`,
		},
		{
			name:           "failure: malformed body",
			body:           `{"token":`,
			mock:           &mockSymbolUsecase{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: company without symbol",
			body:           `{"companies":[{"name":"nameless"}]}`,
			mock:           &mockSymbolUsecase{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "failure: repository error",
			body: `{"companies":[{"symbol":"AAPL"}]}`,
			mock: &mockSymbolUsecase{
				ConfirmSymbolsFunc: func(ctx context.Context, companies []entity.Company) (int, error) {
					return 0, errors.New("confirm symbols: database error")
				},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"confirm symbols: database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.POST("/symbols/populate", NewSymbolHandler(tt.mock).Populate)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/symbols/populate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
