// Package usecase はスコアリングサービス呼び出しのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"equity_backend/internal/feature/scoring/domain/entity"
	apphttp "equity_backend/internal/platform/http"
)

// Scorer は入力テーブルをスコアリングサービスに送信するインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Scorer interface {
	Score(ctx context.Context, table entity.InputTable) (entity.ScoreResponse, error)
}

// DefaultInput はサンプルとして送信する iris データセット形式の入力です。
func DefaultInput() entity.InputTable {
	return entity.InputTable{
		ColumnNames: []string{"sepallength", "sepalwidth", "petallength", "petalwidth", "class"},
		Values: [][]string{
			{"1", "2", "10", "3", "value"},
			{"0", "0", "0", "0", "value"},
		},
	}
}

// ScoringUsecase はスコアリング結果を表示用のメッセージに変換します。
type ScoringUsecase struct {
	scorer Scorer
}

// NewScoringUsecase は新しい ScoringUsecase を作成します。
func NewScoringUsecase(scorer Scorer) *ScoringUsecase {
	return &ScoringUsecase{scorer: scorer}
}

// ScoreDefault はサンプル入力をスコアリングします。
func (u *ScoringUsecase) ScoreDefault(ctx context.Context) entity.ScoreResult {
	return u.Score(ctx, DefaultInput())
}

// Score は入力テーブルをスコアリングし、結果または失敗内容をメッセージとして返します。
// 失敗はエラーとして返さず、ステータスコードとレスポンスヘッダーをメッセージに含めます。
func (u *ScoringUsecase) Score(ctx context.Context, table entity.InputTable) entity.ScoreResult {
	resp, err := u.scorer.Score(ctx, table)
	if err == nil {
		return entity.ScoreResult{Message: "Result: " + resp.Raw, JSONObject: resp.Formatted, Succeeded: true}
	}

	var se *apphttp.StatusError
	switch {
	case errors.As(err, &se):
		slog.Warn("scoring request rejected", "status", se.StatusCode)
		return entity.ScoreResult{
			Message:    fmt.Sprintf("The request failed with status code: %d\n%s", se.StatusCode, se.FormatHeader()),
			JSONObject: se.Body,
		}
	case resp.Raw != "":
		// 2xxだが結果の形式が想定外
		slog.Warn("scoring result could not be parsed", "error", err)
		return entity.ScoreResult{Message: "Result: " + resp.Raw, Succeeded: true}
	default:
		slog.Warn("scoring request failed", "error", err)
		return entity.ScoreResult{Message: "The request failed: " + err.Error()}
	}
}
