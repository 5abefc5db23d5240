package usecase

import (
	"context"
	"sort"
	"testing"

	companyentity "equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/equities/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xyzChart はプロバイダーが新しい順で返すXYZの2日分の日足です。
func xyzChart() []entity.Equity {
	return []entity.Equity{
		{Date: "2024-01-02", High: 10, Volume: 2_000_000},
		{Date: "2024-01-01", High: 8, Volume: 1_000_000},
	}
}

func TestChartUsecase_FetchChart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		symbol    string
		getChart  func(ctx context.Context, symbol string) ([]entity.Equity, error)
		wantDates []string
		wantCalls int
	}{
		{
			name:      "success: sorted ascending with symbol back-filled",
			symbol:    "XYZ",
			getChart:  func(ctx context.Context, symbol string) ([]entity.Equity, error) { return xyzChart(), nil },
			wantDates: []string{"2024-01-01", "2024-01-02"},
			wantCalls: 1,
		},
		{
			name:      "degraded: provider error yields empty",
			symbol:    "XYZ",
			getChart:  func(ctx context.Context, symbol string) ([]entity.Equity, error) { return nil, ErrMarketAPI },
			wantDates: []string{},
			wantCalls: 1,
		},
		{
			name:      "degraded: blank symbol skips the provider",
			symbol:    "  ",
			wantDates: []string{},
			wantCalls: 0,
		},
		{
			name:      "success: empty chart",
			symbol:    "XYZ",
			getChart:  func(ctx context.Context, symbol string) ([]entity.Equity, error) { return []entity.Equity{}, nil },
			wantDates: []string{},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mockChartProvider{GetChartFunc: tt.getChart}
			uc := NewChartUsecase(provider, &mockEquityRepository{}, &mockCompanyLister{})

			got := uc.FetchChart(context.Background(), tt.symbol)

			require.NotNil(t, got)
			dates := make([]string, 0, len(got))
			for _, e := range got {
				dates = append(dates, e.Date)
				assert.Equal(t, tt.symbol, e.Symbol)
			}
			assert.Equal(t, tt.wantDates, dates)
			assert.Equal(t, tt.wantCalls, provider.GetChartCalls)
		})
	}
}

func TestChartUsecase_FetchChart_StableForEqualDates(t *testing.T) {
	t.Parallel()

	provider := &mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) {
		return []entity.Equity{
			{Date: "2024-01-02", High: 1},
			{Date: "2024-01-01", High: 2},
			{Date: "2024-01-02", High: 3},
		}, nil
	}}
	uc := NewChartUsecase(provider, &mockEquityRepository{}, &mockCompanyLister{})

	got := uc.FetchChart(context.Background(), "ABC")

	require.Len(t, got, 3)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Date < got[j].Date }))
	assert.Equal(t, 1.0, got[1].High, "equal dates keep provider order")
	assert.Equal(t, 3.0, got[2].High)
}

func TestChartUsecase_FetchChart_DoesNotMutateProviderSlice(t *testing.T) {
	t.Parallel()

	src := xyzChart()
	provider := &mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return src, nil }}
	uc := NewChartUsecase(provider, &mockEquityRepository{}, &mockCompanyLister{})

	_ = uc.FetchChart(context.Background(), "XYZ")

	assert.Equal(t, "2024-01-02", src[0].Date)
	assert.Empty(t, src[0].Symbol)
}

func TestChartUsecase_PersistChart(t *testing.T) {
	t.Parallel()

	t.Run("success: second call inserts nothing", func(t *testing.T) {
		t.Parallel()
		repo := &mockEquityRepository{}
		uc := NewChartUsecase(&mockChartProvider{}, repo, &mockCompanyLister{})
		ctx := context.Background()

		first, err := uc.PersistChart(ctx, "XYZ", xyzChart())
		require.NoError(t, err)
		second, err := uc.PersistChart(ctx, "XYZ", xyzChart())
		require.NoError(t, err)

		assert.Equal(t, 2, first)
		assert.Equal(t, 0, second)
		assert.Len(t, repo.rows, 2)
		_, ok := repo.rows["XYZ|2024-01-01"]
		assert.True(t, ok, "symbol should be back-filled before insert")
	})

	t.Run("success: empty input", func(t *testing.T) {
		t.Parallel()
		uc := NewChartUsecase(&mockChartProvider{}, &mockEquityRepository{
			InsertIfAbsentFunc: func(ctx context.Context, equities []entity.Equity) (int, error) {
				t.Error("repository should not be called")
				return 0, nil
			},
		}, &mockCompanyLister{})

		n, err := uc.PersistChart(context.Background(), "XYZ", nil)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: repository error is wrapped", func(t *testing.T) {
		t.Parallel()
		uc := NewChartUsecase(&mockChartProvider{}, &mockEquityRepository{
			InsertIfAbsentFunc: func(ctx context.Context, equities []entity.Equity) (int, error) { return 0, ErrDB },
		}, &mockCompanyLister{})

		_, err := uc.PersistChart(context.Background(), "XYZ", xyzChart())

		assert.ErrorIs(t, err, ErrDB)
		assert.Contains(t, err.Error(), "persist chart XYZ")
	})
}

func TestChartUsecase_ChartView(t *testing.T) {
	t.Parallel()

	companies := []companyentity.Company{{Symbol: "XYZ", Name: "XYZ Corp"}}
	uc := NewChartUsecase(
		&mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return xyzChart(), nil }},
		&mockEquityRepository{},
		&mockCompanyLister{ListFunc: func(ctx context.Context) ([]companyentity.Company, error) { return companies, nil }},
	)

	view, err := uc.ChartView(context.Background(), "XYZ")

	require.NoError(t, err)
	assert.Equal(t, companies, view.Companies)
	assert.Equal(t, "2024-01-01,2024-01-02", view.Dates)
	assert.Equal(t, "8,10", view.Prices)
	assert.Equal(t, "1,2", view.Volumes)
	require.NotNil(t, view.Current)
	assert.Equal(t, "2024-01-02", view.Current.Date)
}

func TestChartUsecase_ChartView_Errors(t *testing.T) {
	t.Parallel()

	t.Run("error: symbol required", func(t *testing.T) {
		t.Parallel()
		uc := NewChartUsecase(&mockChartProvider{}, &mockEquityRepository{}, &mockCompanyLister{})

		_, err := uc.ChartView(context.Background(), "")

		assert.ErrorIs(t, err, ErrSymbolRequired)
	})

	t.Run("error: company listing fails", func(t *testing.T) {
		t.Parallel()
		uc := NewChartUsecase(&mockChartProvider{}, &mockEquityRepository{}, &mockCompanyLister{
			ListFunc: func(ctx context.Context) ([]companyentity.Company, error) { return nil, ErrDB },
		})

		_, err := uc.ChartView(context.Background(), "XYZ")

		assert.ErrorIs(t, err, ErrDB)
	})
}

func TestChartUsecase_SaveChart(t *testing.T) {
	t.Parallel()

	repo := &mockEquityRepository{}
	uc := NewChartUsecase(
		&mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return xyzChart(), nil }},
		repo,
		&mockCompanyLister{},
	)
	ctx := context.Background()

	n, view, err := uc.SaveChart(ctx, "XYZ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "8,10", view.Prices)

	n, _, err = uc.SaveChart(ctx, "XYZ")
	require.NoError(t, err)
	assert.Zero(t, n, "saving the same chart twice stores nothing new")
	assert.Len(t, repo.rows, 2)
}

func TestChartUsecase_SaveChart_DegradedFetchStoresNothing(t *testing.T) {
	t.Parallel()

	repo := &mockEquityRepository{}
	uc := NewChartUsecase(
		&mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return nil, ErrMarketAPI }},
		repo,
		&mockCompanyLister{},
	)

	n, view, err := uc.SaveChart(context.Background(), "XYZ")

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Nil(t, view.Current)
	assert.Empty(t, repo.rows)
}

func TestChartUsecase_SaveChart_PersistError(t *testing.T) {
	t.Parallel()

	uc := NewChartUsecase(
		&mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return xyzChart(), nil }},
		&mockEquityRepository{InsertIfAbsentFunc: func(ctx context.Context, equities []entity.Equity) (int, error) { return 0, ErrDB }},
		&mockCompanyLister{},
	)

	_, _, err := uc.SaveChart(context.Background(), "XYZ")

	assert.ErrorIs(t, err, ErrDB)
}

func TestChartUsecase_StoredChartView(t *testing.T) {
	t.Parallel()

	repo := &mockEquityRepository{}
	provider := &mockChartProvider{GetChartFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return xyzChart(), nil }}
	uc := NewChartUsecase(provider, repo, &mockCompanyLister{})
	ctx := context.Background()

	_, _, err := uc.SaveChart(ctx, "XYZ")
	require.NoError(t, err)

	view, err := uc.StoredChartView(ctx, "XYZ")

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01,2024-01-02", view.Dates)
	assert.Equal(t, float32(9), view.AvgPrice)
	assert.Equal(t, 1, provider.GetChartCalls, "stored view does not call the provider")
}

func TestChartUsecase_StoredChartView_Errors(t *testing.T) {
	t.Parallel()

	uc := NewChartUsecase(&mockChartProvider{}, &mockEquityRepository{
		ListBySymbolFunc: func(ctx context.Context, symbol string) ([]entity.Equity, error) { return nil, ErrDB },
	}, &mockCompanyLister{})

	_, err := uc.StoredChartView(context.Background(), "XYZ")
	assert.ErrorIs(t, err, ErrDB)

	_, err = uc.StoredChartView(context.Background(), " ")
	assert.ErrorIs(t, err, ErrSymbolRequired)
}
