package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"equity_backend/internal/api"
	"equity_backend/internal/feature/equities/transport/http/dto"
	"equity_backend/internal/feature/equities/usecase"

	"github.com/gin-gonic/gin"
)

// IngestUsecase は一括更新ユースケースのインターフェースです。
type IngestUsecase interface {
	RefreshAll(ctx context.Context, symbols []string) (usecase.RefreshSummary, error)
}

// IngestHandler は日足の一括更新リクエストを処理します。
type IngestHandler struct {
	uc IngestUsecase
}

// NewIngestHandler は新しい IngestHandler を作成します。
func NewIngestHandler(uc IngestUsecase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

// RefreshAll は指定銘柄（省略時は登録済みの全企業）の日足を取得・保存し、集計を返します。
// 例: POST /chart/refresh {"symbols":["AAPL","MSFT"]}
func (h *IngestHandler) RefreshAll(c *gin.Context) {
	var req dto.RefreshRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
	}

	summary, err := h.uc.RefreshAll(c.Request.Context(), req.Symbols)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
