package handler

import (
	"context"
	"net/http"

	"equity_backend/internal/api"
	"equity_backend/internal/feature/scoring/domain/entity"
	"equity_backend/internal/feature/scoring/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// ScoringUsecase はスコアリングユースケースのインターフェースです。
type ScoringUsecase interface {
	ScoreDefault(ctx context.Context) entity.ScoreResult
	Score(ctx context.Context, table entity.InputTable) entity.ScoreResult
}

// ScoringHandler はスコアリングのHTTPリクエストを処理します。
type ScoringHandler struct {
	uc ScoringUsecase
}

// NewScoringHandler は新しい ScoringHandler を作成します。
func NewScoringHandler(uc ScoringUsecase) *ScoringHandler {
	return &ScoringHandler{uc: uc}
}

// Index はサンプル入力のスコアリング結果を返します。
// 外部サービスの失敗もメッセージとして200で返します。
func (h *ScoringHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromResult(h.uc.ScoreDefault(c.Request.Context())))
}

// Score はリクエストボディの入力テーブルをスコアリングします。
func (h *ScoringHandler) Score(c *gin.Context) {
	var req dto.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	c.JSON(http.StatusOK, dto.FromResult(h.uc.Score(c.Request.Context(), req.ToEntity())))
}
