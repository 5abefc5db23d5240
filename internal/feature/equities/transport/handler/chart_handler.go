package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"equity_backend/internal/api"
	"equity_backend/internal/feature/equities/domain/entity"
	"equity_backend/internal/feature/equities/transport/http/dto"
	"equity_backend/internal/feature/equities/usecase"
	"equity_backend/internal/platform/chartrender"

	"github.com/gin-gonic/gin"
)

// ChartUsecase はチャートに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ChartUsecase interface {
	FetchChart(ctx context.Context, symbol string) []entity.Equity
	ChartView(ctx context.Context, symbol string) (entity.CompaniesEquities, error)
	StoredChartView(ctx context.Context, symbol string) (entity.CompaniesEquities, error)
	SaveChart(ctx context.Context, symbol string) (int, entity.CompaniesEquities, error)
}

// ChartHandler はチャートに関するHTTPリクエストを処理します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler は新しい ChartHandler を作成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChart は外部APIから取得した1年分の日足と登録済み企業一覧を集約して返します。
// 例: GET /chart?symbol=AAPL
func (h *ChartHandler) GetChart(c *gin.Context) {
	symbol, ok := symbolParam(c)
	if !ok {
		return
	}
	view, err := h.uc.ChartView(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// GetStoredChart は保存済みの日足のみから集約を返します。外部APIは呼び出しません。
// 例: GET /chart/stored?symbol=AAPL
func (h *ChartHandler) GetStoredChart(c *gin.Context) {
	symbol, ok := symbolParam(c)
	if !ok {
		return
	}
	view, err := h.uc.StoredChartView(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}

// SaveChart は日足を取得して未登録分を保存し、保存件数と集約を返します。
// 例: POST /chart/save?symbol=AAPL
func (h *ChartHandler) SaveChart(c *gin.Context) {
	symbol, ok := symbolParam(c)
	if !ok {
		return
	}
	saved, view, err := h.uc.SaveChart(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SaveChartResponse{Saved: saved, View: dto.FromView(view)})
}

// GetChartImage は日足の高値と出来高をPNG画像で返します。
// データが2件未満の場合は404を返します。
// 例: GET /chart/image?symbol=AAPL
func (h *ChartHandler) GetChartImage(c *gin.Context) {
	symbol, ok := symbolParam(c)
	if !ok {
		return
	}
	png, err := chartrender.RenderEquityChart(symbol, h.uc.FetchChart(c.Request.Context(), symbol))
	if err != nil {
		if errors.Is(err, chartrender.ErrNotEnoughPoints) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no chart data for " + symbol})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

func symbolParam(c *gin.Context) (string, bool) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrSymbolRequired.Error()})
		return "", false
	}
	return symbol, true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrSymbolRequired) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}
