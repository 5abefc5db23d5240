// Package usecase は日足チャートの取得・永続化・表示用集約のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/equities/domain/entity"
)

// ChartProvider は外部APIから1銘柄分の日足を取得するインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ChartProvider interface {
	GetChart(ctx context.Context, symbol string) ([]entity.Equity, error)
}

// EquityRepository は日足データの永続化レイヤーを抽象化します。
type EquityRepository interface {
	// InsertIfAbsent は (symbol, date) が未登録のバーのみを1トランザクションで挿入し、挿入件数を返します。
	InsertIfAbsent(ctx context.Context, equities []entity.Equity) (int, error)
	// ListBySymbol は指定銘柄の保存済みバーを日付の昇順で返します。
	ListBySymbol(ctx context.Context, symbol string) ([]entity.Equity, error)
}

// CompanyLister は永続化済みの企業一覧を返します。
type CompanyLister interface {
	List(ctx context.Context) ([]companyentity.Company, error)
}

// ChartUsecase は日足チャートに関するユースケースです。
type ChartUsecase struct {
	provider  ChartProvider
	equities  EquityRepository
	companies CompanyLister
}

// NewChartUsecase は新しい ChartUsecase を作成します。
func NewChartUsecase(provider ChartProvider, equities EquityRepository, companies CompanyLister) *ChartUsecase {
	return &ChartUsecase{provider: provider, equities: equities, companies: companies}
}

// FetchChart は指定銘柄の1年分の日足を取得し、銘柄コードを補完して日付の昇順に並べ替えます。
// 取得や解析に失敗した場合は空のスライスを返します。
func (u *ChartUsecase) FetchChart(ctx context.Context, symbol string) []entity.Equity {
	out, err := u.fetch(ctx, symbol)
	if err != nil {
		slog.Warn("failed to fetch chart", "symbol", symbol, "error", err)
		return []entity.Equity{}
	}
	return out
}

func (u *ChartUsecase) fetch(ctx context.Context, symbol string) ([]entity.Equity, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	es, err := u.provider.GetChart(ctx, symbol)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Equity, len(es))
	copy(out, es)
	for i := range out {
		out[i].Symbol = symbol
	}
	// 日付はYYYY-MM-DD形式のため文字列比較で時系列順になる
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// PersistChart は (symbol, date) が未登録のバーのみを保存し、挿入件数を返します。
// 同じ入力で繰り返し呼び出しても結果は変わりません。
func (u *ChartUsecase) PersistChart(ctx context.Context, symbol string, equities []entity.Equity) (int, error) {
	if len(equities) == 0 {
		return 0, nil
	}
	rows := make([]entity.Equity, len(equities))
	copy(rows, equities)
	if symbol != "" {
		for i := range rows {
			rows[i].Symbol = symbol
		}
	}

	n, err := u.equities.InsertIfAbsent(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("persist chart %s: %w", symbol, err)
	}
	return n, nil
}

// ChartView は登録済み企業一覧と指定銘柄の日足から表示用の集約を組み立てます。
func (u *ChartUsecase) ChartView(ctx context.Context, symbol string) (entity.CompaniesEquities, error) {
	if strings.TrimSpace(symbol) == "" {
		return entity.CompaniesEquities{}, ErrSymbolRequired
	}
	companies, err := u.companies.List(ctx)
	if err != nil {
		return entity.CompaniesEquities{}, fmt.Errorf("list companies: %w", err)
	}
	return BuildCompaniesEquities(companies, u.FetchChart(ctx, symbol)), nil
}

// SaveChart は日足を取得して保存し、保存後の表示用集約を返します。
func (u *ChartUsecase) SaveChart(ctx context.Context, symbol string) (int, entity.CompaniesEquities, error) {
	if strings.TrimSpace(symbol) == "" {
		return 0, entity.CompaniesEquities{}, ErrSymbolRequired
	}
	equities := u.FetchChart(ctx, symbol)
	n, err := u.PersistChart(ctx, strings.TrimSpace(symbol), equities)
	if err != nil {
		return 0, entity.CompaniesEquities{}, err
	}
	companies, err := u.companies.List(ctx)
	if err != nil {
		return 0, entity.CompaniesEquities{}, fmt.Errorf("list companies: %w", err)
	}
	return n, BuildCompaniesEquities(companies, equities), nil
}

// StoredChartView は外部APIを呼ばず、保存済みのバーから表示用の集約を組み立てます。
func (u *ChartUsecase) StoredChartView(ctx context.Context, symbol string) (entity.CompaniesEquities, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return entity.CompaniesEquities{}, ErrSymbolRequired
	}
	equities, err := u.equities.ListBySymbol(ctx, symbol)
	if err != nil {
		return entity.CompaniesEquities{}, fmt.Errorf("list stored chart %s: %w", symbol, err)
	}
	companies, err := u.companies.List(ctx)
	if err != nil {
		return entity.CompaniesEquities{}, fmt.Errorf("list companies: %w", err)
	}
	return BuildCompaniesEquities(companies, equities), nil
}
