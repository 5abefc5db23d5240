package handler

import (
	"context"
	"errors"
	"net/http"

	"equity_backend/internal/api"
	"equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/companies/transport/http/dto"
	"equity_backend/internal/feature/companies/usecase"

	"github.com/gin-gonic/gin"
)

// SymbolUsecase は銘柄一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListSymbols(ctx context.Context) ([]entity.Company, string)
	ConfirmSymbols(ctx context.Context, companies []entity.Company) (int, error)
	ConfirmSymbolBatch(ctx context.Context, token string) ([]entity.Company, int, error)
}

// SymbolHandler は銘柄一覧に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は外部APIから取得した銘柄一覧（最大50件）とバッチトークンを返します。
// 取得に失敗した場合も空の一覧で200を返します。
func (h *SymbolHandler) List(c *gin.Context) {
	companies, token := h.uc.ListSymbols(c.Request.Context())
	c.JSON(http.StatusOK, dto.SymbolListResponse{
		Token:     token,
		Companies: dto.FromEntities(companies),
	})
}

// Populate は銘柄一覧を確定し、未登録の企業のみを保存します。
// トークンが指定されていればサーバー側のバッチを、なければリクエストボディの一覧を使用します。
func (h *SymbolHandler) Populate(c *gin.Context) {
	var req dto.PopulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	ctx := c.Request.Context()
	var (
		companies []entity.Company
		saved     int
		err       error
	)
	switch {
	case req.Token != "":
		companies, saved, err = h.uc.ConfirmSymbolBatch(ctx, req.Token)
	case len(req.Companies) > 0:
		companies = dto.ToEntities(req.Companies)
		saved, err = h.uc.ConfirmSymbols(ctx, companies)
	default:
		err = usecase.ErrNoCompanies
	}

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBatchNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrNoCompanies):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PopulateResponse{Saved: saved, Companies: dto.FromEntities(companies)})
}
