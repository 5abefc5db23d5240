package iex

import (
	"encoding/json"
	"fmt"
	"strings"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	equityentity "equity_backend/internal/feature/equities/domain/entity"
	"equity_backend/internal/platform/externalapi/iex/dto"
)

// MaxSymbols は銘柄一覧から取り込む最大件数です（デモ規模のための固定値）。
const MaxSymbols = 50

// ParseError はレスポンスボディが期待するJSON形式でないことを表します。
type ParseError struct {
	Payload string // "symbols" または "chart"
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("iex: parse %s: %v", e.Payload, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSymbols は銘柄一覧のJSON配列をCompanyのスライスに変換します。
// 受信順を保ったまま先頭MaxSymbols件に切り詰めます。空ボディは空スライスになります。
func ParseSymbols(body string) ([]companyentity.Company, error) {
	if strings.TrimSpace(body) == "" {
		return []companyentity.Company{}, nil
	}

	var items []dto.SymbolItem
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, &ParseError{Payload: "symbols", Err: err}
	}
	if len(items) > MaxSymbols {
		items = items[:MaxSymbols]
	}

	out := make([]companyentity.Company, 0, len(items))
	for _, it := range items {
		out = append(out, companyentity.Company{
			Symbol:    it.Symbol,
			Name:      it.Name,
			Date:      it.Date,
			IsEnabled: it.IsEnabled,
			Type:      it.Type,
			IEXID:     it.IEXID,
		})
	}
	return out, nil
}

// ParseChart はチャートレスポンスをEquityのスライスに変換します。
// レスポンスに銘柄コードは含まれないため、Symbolは空のままです。
func ParseChart(body string) ([]equityentity.Equity, error) {
	if strings.TrimSpace(body) == "" {
		return []equityentity.Equity{}, nil
	}

	var res dto.ChartResponse
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, &ParseError{Payload: "chart", Err: err}
	}

	out := make([]equityentity.Equity, 0, len(res.Chart))
	for _, b := range res.Chart {
		out = append(out, equityentity.Equity{
			Date:             b.Date,
			Open:             b.Open,
			High:             b.High,
			Low:              b.Low,
			Close:            b.Close,
			Volume:           b.Volume,
			UnadjustedVolume: b.UnadjustedVolume,
			Change:           b.Change,
			ChangePercent:    b.ChangePercent,
			VWAP:             b.VWAP,
			Label:            b.Label,
			ChangeOverTime:   b.ChangeOverTime,
		})
	}
	return out, nil
}
