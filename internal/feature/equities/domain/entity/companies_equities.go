package entity

import companyentity "equity_backend/internal/feature/companies/domain/entity"

// CompaniesEquities はチャート表示用の集約ビューです。永続化されません。
// リクエストごとに生成され、生成後に変更されることはありません。
type CompaniesEquities struct {
	Companies []companyentity.Company `json:"companies"`
	Current   *Equity                 `json:"current"`   // 最新（リスト末尾）のバー。バーがなければnil
	Dates     string                  `json:"dates"`     // カンマ区切りの日付系列
	Prices    string                  `json:"prices"`    // カンマ区切りの高値系列
	Volumes   string                  `json:"volumes"`   // カンマ区切りの出来高系列（百万単位）
	AvgPrice  float32                 `json:"avgPrice"`  // 高値の平均
	AvgVolume float64                 `json:"avgVolume"` // 出来高の平均（百万単位）
}
