// Package dto はequities HTTP APIのデータ転送オブジェクトを定義します。
package dto

import (
	companydto "equity_backend/internal/feature/companies/transport/http/dto"
	"equity_backend/internal/feature/equities/domain/entity"

	"github.com/guregu/null/v6"
)

// EquityItem はレスポンス用の日足1本分です。未提供の項目はnullになります。
type EquityItem struct {
	Symbol           string      `json:"symbol"`
	Date             string      `json:"date"`
	Open             null.Float  `json:"open"`
	High             float64     `json:"high"`
	Low              null.Float  `json:"low"`
	Close            null.Float  `json:"close"`
	Volume           int64       `json:"volume"`
	UnadjustedVolume null.Int    `json:"unadjustedVolume"`
	Change           null.Float  `json:"change"`
	ChangePercent    null.Float  `json:"changePercent"`
	VWAP             null.Float  `json:"vwap"`
	Label            null.String `json:"label"`
	ChangeOverTime   null.Float  `json:"changeOverTime"`
}

// ChartViewResponse はチャート表示用の集約です。
type ChartViewResponse struct {
	Companies []companydto.CompanyItem `json:"companies"`
	Current   *EquityItem              `json:"current"`
	Dates     string                   `json:"dates"`
	Prices    string                   `json:"prices"`
	Volumes   string                   `json:"volumes"`
	AvgPrice  float32                  `json:"avgPrice"`
	AvgVolume float64                  `json:"avgVolume"`
}

// SaveChartResponse は POST /chart/save のレスポンスです。
type SaveChartResponse struct {
	Saved int               `json:"saved"`
	View  ChartViewResponse `json:"view"`
}

// FromView は集約エンティティをレスポンスに変換します。
func FromView(v entity.CompaniesEquities) ChartViewResponse {
	out := ChartViewResponse{
		Companies: companydto.FromEntities(v.Companies),
		Dates:     v.Dates,
		Prices:    v.Prices,
		Volumes:   v.Volumes,
		AvgPrice:  v.AvgPrice,
		AvgVolume: v.AvgVolume,
	}
	if v.Current != nil {
		item := fromEquity(*v.Current)
		out.Current = &item
	}
	return out
}

func fromEquity(e entity.Equity) EquityItem {
	return EquityItem{
		Symbol:           e.Symbol,
		Date:             e.Date,
		Open:             e.Open,
		High:             e.High,
		Low:              e.Low,
		Close:            e.Close,
		Volume:           e.Volume,
		UnadjustedVolume: e.UnadjustedVolume,
		Change:           e.Change,
		ChangePercent:    e.ChangePercent,
		VWAP:             e.VWAP,
		Label:            e.Label,
		ChangeOverTime:   e.ChangeOverTime,
	}
}

// RefreshRequest は POST /chart/refresh のボディです。Symbols が空なら登録済みの全企業が対象です。
type RefreshRequest struct {
	Symbols []string `json:"symbols"`
}
