// Package entity はequitiesフィーチャーのドメインモデルを定義します。
package entity

import "github.com/guregu/null/v6"

// Equity は1銘柄1日分の価格バー（日足）を表します。
// プロバイダーがnullを返した項目は無効値（未提供）のまま保持されます。
type Equity struct {
	Symbol           string      `json:"symbol"`           // 銘柄コード（取得後に補完）
	Date             string      `json:"date"`             // 日付（YYYY-MM-DD）
	Open             null.Float  `json:"open"`             // 始値
	High             float64     `json:"high"`             // 高値
	Low              null.Float  `json:"low"`              // 安値
	Close            null.Float  `json:"close"`            // 終値
	Volume           int64       `json:"volume"`           // 出来高
	UnadjustedVolume null.Int    `json:"unadjustedVolume"` // 未調整出来高
	Change           null.Float  `json:"change"`           // 前日比
	ChangePercent    null.Float  `json:"changePercent"`    // 前日比（%）
	VWAP             null.Float  `json:"vwap"`             // 出来高加重平均価格
	Label            null.String `json:"label"`            // 表示用ラベル
	ChangeOverTime   null.Float  `json:"changeOverTime"`   // 期間内の累積変化率
}
