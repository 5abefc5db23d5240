package usecase

import (
	"context"
	"errors"
	"sort"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/equities/domain/entity"
)

// ErrDB はモックと期待値の間で共有されるセンチネルエラーです。
var ErrDB = errors.New("database error")

// ErrMarketAPI は外部APIの失敗を表すセンチネルエラーです。
var ErrMarketAPI = errors.New("market API error")

type mockChartProvider struct {
	GetChartFunc  func(ctx context.Context, symbol string) ([]entity.Equity, error)
	GetChartCalls int
}

func (m *mockChartProvider) GetChart(ctx context.Context, symbol string) ([]entity.Equity, error) {
	m.GetChartCalls++
	if m.GetChartFunc != nil {
		return m.GetChartFunc(ctx, symbol)
	}
	return nil, errors.New("GetChartFunc is not implemented")
}

// mockEquityRepository は (symbol, date) をキーにしたメモリ上のリポジトリです。
type mockEquityRepository struct {
	InsertIfAbsentFunc func(ctx context.Context, equities []entity.Equity) (int, error)
	ListBySymbolFunc   func(ctx context.Context, symbol string) ([]entity.Equity, error)
	rows               map[string]entity.Equity
}

func (m *mockEquityRepository) InsertIfAbsent(ctx context.Context, equities []entity.Equity) (int, error) {
	if m.InsertIfAbsentFunc != nil {
		return m.InsertIfAbsentFunc(ctx, equities)
	}
	if m.rows == nil {
		m.rows = map[string]entity.Equity{}
	}
	n := 0
	for _, e := range equities {
		key := e.Symbol + "|" + e.Date
		if _, ok := m.rows[key]; ok {
			continue
		}
		m.rows[key] = e
		n++
	}
	return n, nil
}

func (m *mockEquityRepository) ListBySymbol(ctx context.Context, symbol string) ([]entity.Equity, error) {
	if m.ListBySymbolFunc != nil {
		return m.ListBySymbolFunc(ctx, symbol)
	}
	out := []entity.Equity{}
	for _, e := range m.rows {
		if e.Symbol == symbol {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type mockCompanyLister struct {
	ListFunc func(ctx context.Context) ([]companyentity.Company, error)
}

func (m *mockCompanyLister) List(ctx context.Context) ([]companyentity.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []companyentity.Company{}, nil
}

// mockRateLimiter はテスト用に待機せず呼び出し回数のみを記録します。
type mockRateLimiter struct {
	WaitCalls int
	Err       error
}

func (m *mockRateLimiter) Wait(ctx context.Context) error {
	m.WaitCalls++
	return m.Err
}
