package iex

import (
	"context"
	"net/url"
	"strings"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	companyusecase "equity_backend/internal/feature/companies/usecase"
	equityentity "equity_backend/internal/feature/equities/domain/entity"
	equityusecase "equity_backend/internal/feature/equities/usecase"
	apphttp "equity_backend/internal/platform/http"
)

// ChartRange はチャート取得時の固定期間です。
const ChartRange = "1y"

// Market はIEX APIから銘柄一覧と日足チャートを取得します。
type Market struct {
	cfg    Config
	client *apphttp.Client
}

// MarketがSymbolProviderとChartProviderを実装していることをコンパイル時に検証します。
var (
	_ companyusecase.SymbolProvider = (*Market)(nil)
	_ equityusecase.ChartProvider   = (*Market)(nil)
)

// NewMarket は指定された設定とHTTPクライアントでMarketの新しいインスタンスを生成します。
func NewMarket(cfg Config, client *apphttp.Client) *Market {
	return &Market{cfg: cfg.WithDefaults(), client: client}
}

// ListSymbols は ref-data/symbols を呼び出し、先頭50件の銘柄を返します。
func (m *Market) ListSymbols(ctx context.Context) ([]companyentity.Company, error) {
	body, err := m.client.Get(ctx, m.symbolsURL(), nil)
	if err != nil {
		return nil, err
	}
	return ParseSymbols(body)
}

// GetChart は指定銘柄の1年分の日足を取得します。
// 並び順と銘柄コードの補完は呼び出し側（usecase）が行います。
func (m *Market) GetChart(ctx context.Context, symbol string) ([]equityentity.Equity, error) {
	body, err := m.client.Get(ctx, m.chartURL(symbol), nil)
	if err != nil {
		return nil, err
	}
	return ParseChart(body)
}

func (m *Market) symbolsURL() string {
	u := m.base() + "/ref-data/symbols"
	if m.cfg.Token != "" {
		u += "?token=" + url.QueryEscape(m.cfg.Token)
	}
	return u
}

func (m *Market) chartURL(symbol string) string {
	u := m.base() + "/stock/" + url.PathEscape(symbol) + "/batch?types=chart&range=" + ChartRange
	if m.cfg.Token != "" {
		u += "&token=" + url.QueryEscape(m.cfg.Token)
	}
	return u
}

func (m *Market) base() string {
	return strings.TrimRight(m.cfg.BaseURL, "/")
}
