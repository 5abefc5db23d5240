// Package adapters はequitiesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"equity_backend/internal/feature/equities/domain/entity"

	"github.com/guregu/null/v6"
)

// EquityModel は equities テーブルのGORMモデルです。
// (symbol, date) の複合ユニークインデックスで1銘柄1日1行を保証します。
// companies との関連は論理的なもので、外部キー制約は持ちません。
type EquityModel struct {
	ID     uint    `gorm:"primaryKey"`
	Symbol string  `gorm:"size:32;not null;uniqueIndex:equity_sym_date,priority:1"`
	Date   string  `gorm:"size:10;not null;uniqueIndex:equity_sym_date,priority:2"`
	High   float64 `gorm:"not null;default:0"`
	Volume int64   `gorm:"not null;default:0"`

	Open             null.Float  `gorm:"type:double precision"`
	Low              null.Float  `gorm:"type:double precision"`
	Close            null.Float  `gorm:"type:double precision"`
	UnadjustedVolume null.Int    `gorm:"type:bigint"`
	Change           null.Float  `gorm:"type:double precision"`
	ChangePercent    null.Float  `gorm:"type:double precision"`
	VWAP             null.Float  `gorm:"column:vwap;type:double precision"`
	Label            null.String `gorm:"type:varchar(64)"`
	ChangeOverTime   null.Float  `gorm:"type:double precision"`
}

// TableName はGORM用のテーブル名を返します。
func (EquityModel) TableName() string {
	return "equities"
}

func toModel(e entity.Equity) EquityModel {
	return EquityModel{
		Symbol:           e.Symbol,
		Date:             e.Date,
		High:             e.High,
		Volume:           e.Volume,
		Open:             e.Open,
		Low:              e.Low,
		Close:            e.Close,
		UnadjustedVolume: e.UnadjustedVolume,
		Change:           e.Change,
		ChangePercent:    e.ChangePercent,
		VWAP:             e.VWAP,
		Label:            e.Label,
		ChangeOverTime:   e.ChangeOverTime,
	}
}

func (m EquityModel) toEntity() entity.Equity {
	return entity.Equity{
		Symbol:           m.Symbol,
		Date:             m.Date,
		High:             m.High,
		Volume:           m.Volume,
		Open:             m.Open,
		Low:              m.Low,
		Close:            m.Close,
		UnadjustedVolume: m.UnadjustedVolume,
		Change:           m.Change,
		ChangePercent:    m.ChangePercent,
		VWAP:             m.VWAP,
		Label:            m.Label,
		ChangeOverTime:   m.ChangeOverTime,
	}
}
