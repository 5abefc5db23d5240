package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"equity_backend/internal/shared/ratelimiter"
)

// RefreshSummary は一括更新の結果です。
type RefreshSummary struct {
	Symbols  int `json:"symbols"`  // 処理対象の銘柄数
	Inserted int `json:"inserted"` // 新規に保存したバーの合計
	Failed   int `json:"failed"`   // 取得または保存に失敗した銘柄数
}

// IngestUsecase は複数銘柄の日足を外部APIから取得し、データベースに永続化するユースケースです。
type IngestUsecase struct {
	charts      *ChartUsecase
	companies   CompanyLister
	rateLimiter ratelimiter.Limiter
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(charts *ChartUsecase, companies CompanyLister, rateLimiter ratelimiter.Limiter) *IngestUsecase {
	return &IngestUsecase{charts: charts, companies: companies, rateLimiter: rateLimiter}
}

// ingestOne は1銘柄分の日足を取得し、未登録のバーのみを保存します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string) (int, error) {
	es, err := iu.charts.fetch(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return iu.charts.PersistChart(ctx, strings.TrimSpace(symbol), es)
}

// RefreshAll は指定された全銘柄の日足を取得して保存します。symbols が空の場合は登録済みの全企業が対象です。
// APIのレートリミットを考慮して、リクエスト間に待機時間を設けます。
func (iu *IngestUsecase) RefreshAll(ctx context.Context, symbols []string) (RefreshSummary, error) {
	if len(symbols) == 0 {
		companies, err := iu.companies.List(ctx)
		if err != nil {
			return RefreshSummary{}, fmt.Errorf("list companies: %w", err)
		}
		for _, c := range companies {
			symbols = append(symbols, c.Symbol)
		}
	}

	summary := RefreshSummary{Symbols: len(symbols)}
	for _, s := range symbols {
		if err := iu.rateLimiter.Wait(ctx); err != nil {
			return summary, err
		}
		n, err := iu.ingestOne(ctx, s)
		if err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の銘柄へ
			slog.Error("failed to ingest chart", "symbol", s, "error", err)
			summary.Failed++
			continue
		}
		summary.Inserted += n
	}

	slog.Info("refresh completed", "symbols", summary.Symbols, "inserted", summary.Inserted, "failed", summary.Failed)
	return summary, nil
}
