// Package dto はIEX APIレスポンスのデータ転送オブジェクトを定義します。
package dto

import "github.com/guregu/null/v6"

// SymbolItem は ref-data/symbols エンドポイントが返す配列の1要素です。
type SymbolItem struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	IsEnabled bool   `json:"isEnabled"`
	Type      string `json:"type"`
	IEXID     string `json:"iexId"`
}

// ChartResponse は stock/{symbol}/batch?types=chart のレスポンスです。
type ChartResponse struct {
	Chart []ChartBar `json:"chart"`
}

// ChartBar は日足1本分のデータです。nullの項目は無視されます。
type ChartBar struct {
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
