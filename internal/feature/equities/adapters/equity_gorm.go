package adapters

import (
	"context"
	"errors"

	"equity_backend/internal/feature/equities/domain/entity"
	"equity_backend/internal/feature/equities/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type equityGorm struct {
	db *gorm.DB
}

var _ usecase.EquityRepository = (*equityGorm)(nil)

// NewEquityRepository は指定されたDB接続でequityGormリポジトリの新しいインスタンスを生成します。
func NewEquityRepository(db *gorm.DB) *equityGorm {
	return &equityGorm{db: db}
}

// InsertIfAbsent は (symbol, date) が未登録のバーのみを1トランザクションで挿入します。
// 既存行の確認後に並行して挿入された行とのユニーク制約違反は、挿入済みとして扱います。
func (r *equityGorm) InsertIfAbsent(ctx context.Context, equities []entity.Equity) (int, error) {
	if len(equities) == 0 {
		return 0, nil
	}

	// 銘柄ごとに日付をまとめ、入力内の重複を除外
	bySymbol := map[string][]entity.Equity{}
	order := []string{}
	seen := map[string]map[string]struct{}{}
	for _, e := range equities {
		if e.Symbol == "" || e.Date == "" {
			continue
		}
		if _, ok := seen[e.Symbol]; !ok {
			seen[e.Symbol] = map[string]struct{}{}
			order = append(order, e.Symbol)
		}
		if _, dup := seen[e.Symbol][e.Date]; dup {
			continue
		}
		seen[e.Symbol][e.Date] = struct{}{}
		bySymbol[e.Symbol] = append(bySymbol[e.Symbol], e)
	}

	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, symbol := range order {
			n, err := insertMissing(tx, symbol, bySymbol[symbol])
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func insertMissing(tx *gorm.DB, symbol string, equities []entity.Equity) (int, error) {
	dates := make([]string, 0, len(equities))
	for _, e := range equities {
		dates = append(dates, e.Date)
	}

	var existing []string
	if err := tx.Model(&EquityModel{}).
		Where("symbol = ? AND date IN ?", symbol, dates).
		Pluck("date", &existing).Error; err != nil {
		return 0, err
	}
	stored := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		stored[d] = struct{}{}
	}

	ms := make([]EquityModel, 0, len(equities))
	for _, e := range equities {
		if _, ok := stored[e.Date]; ok {
			continue
		}
		ms = append(ms, toModel(e))
	}
	if len(ms) == 0 {
		return 0, nil
	}

	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoNothing: true,
	}).CreateInBatches(&ms, 100)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, nil
		}
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// ListBySymbol は指定銘柄の保存済みバーを日付の昇順で返します。
func (r *equityGorm) ListBySymbol(ctx context.Context, symbol string) ([]entity.Equity, error) {
	var rows []EquityModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Equity, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
