package usecase

import (
	"strconv"
	"strings"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/equities/domain/entity"
)

// volumeUnit は出来高系列の表示単位（百万）です。
const volumeUnit = 1_000_000

// BuildCompaniesEquities は企業一覧と日足からチャート表示用の集約を生成します。
// 系列は入力順のままカンマ区切りで連結され、Current は末尾のバーを指します。
// 日足が空の場合は Current が nil、系列が空文字列、平均が0になります。
func BuildCompaniesEquities(companies []companyentity.Company, equities []entity.Equity) entity.CompaniesEquities {
	view := entity.CompaniesEquities{Companies: companies}
	if view.Companies == nil {
		view.Companies = []companyentity.Company{}
	}
	if len(equities) == 0 {
		return view
	}

	current := equities[len(equities)-1]
	view.Current = &current

	dates := make([]string, 0, len(equities))
	prices := make([]string, 0, len(equities))
	volumes := make([]string, 0, len(equities))
	var sumHigh float64
	var sumVolume int64
	for _, e := range equities {
		dates = append(dates, e.Date)
		prices = append(prices, strconv.FormatFloat(e.High, 'f', -1, 64))
		volumes = append(volumes, strconv.FormatInt(e.Volume/volumeUnit, 10))
		sumHigh += e.High
		sumVolume += e.Volume
	}

	n := float64(len(equities))
	view.Dates = strings.Join(dates, ",")
	view.Prices = strings.Join(prices, ",")
	view.Volumes = strings.Join(volumes, ",")
	view.AvgPrice = float32(sumHigh / n)
	view.AvgVolume = float64(sumVolume) / n / volumeUnit
	return view
}
