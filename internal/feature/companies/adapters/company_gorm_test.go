package adapters

import (
	"context"
	"fmt"
	"testing"

	"equity_backend/internal/feature/companies/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&CompanyModel{}, &SymbolBatchModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func companies(n int) []entity.Company {
	out := make([]entity.Company, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Company{Symbol: fmt.Sprintf("S%02d", i), Name: fmt.Sprintf("Company %d", i), IsEnabled: true, Type: "cs"})
	}
	return out
}

func countCompanies(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&CompanyModel{}).Count(&n).Error)
	return n
}

func TestNewCompanyRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCompanyRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestCompanyGorm_InsertIfAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		seed         []entity.Company
		input        []entity.Company
		wantInserted int
		wantRows     int64
	}{
		{
			name:         "success: empty input",
			input:        nil,
			wantInserted: 0,
			wantRows:     0,
		},
		{
			name:         "success: insert all new companies",
			input:        companies(3),
			wantInserted: 3,
			wantRows:     3,
		},
		{
			name:         "success: existing symbols are skipped",
			seed:         companies(2),
			input:        companies(4),
			wantInserted: 2,
			wantRows:     4,
		},
		{
			name: "success: duplicates within one call are inserted once",
			input: []entity.Company{
				{Symbol: "AAPL", Name: "Apple"},
				{Symbol: "AAPL", Name: "Apple again"},
			},
			wantInserted: 1,
			wantRows:     1,
		},
		{
			name: "success: symbol match is exact",
			seed: []entity.Company{{Symbol: "aapl", Name: "lower"}},
			input: []entity.Company{
				{Symbol: "AAPL", Name: "Apple"},
			},
			wantInserted: 1,
			wantRows:     2,
		},
		{
			name:         "success: blank symbol is skipped",
			input:        []entity.Company{{Symbol: "", Name: "blank"}},
			wantInserted: 0,
			wantRows:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewCompanyRepository(db)
			ctx := context.Background()

			if len(tt.seed) > 0 {
				_, err := repo.InsertIfAbsent(ctx, tt.seed)
				require.NoError(t, err)
			}

			n, err := repo.InsertIfAbsent(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, n)
			assert.Equal(t, tt.wantRows, countCompanies(t, db))
		})
	}
}

func TestCompanyGorm_InsertIfAbsent_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()
	input := companies(50)

	first, err := repo.InsertIfAbsent(ctx, input)
	require.NoError(t, err)
	second, err := repo.InsertIfAbsent(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, 50, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, int64(50), countCompanies(t, db))
}

func TestCompanyGorm_InsertIfAbsent_KeepsFirstRow(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.InsertIfAbsent(ctx, []entity.Company{{Symbol: "AAPL", Name: "Apple Inc."}})
	require.NoError(t, err)
	_, err = repo.InsertIfAbsent(ctx, []entity.Company{{Symbol: "AAPL", Name: "Renamed"}})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Apple Inc.", list[0].Name, "existing rows are never updated")
}

func TestCompanyGorm_List(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	_, err := repo.InsertIfAbsent(ctx, []entity.Company{
		{Symbol: "MSFT", Name: "Microsoft", IEXID: "2"},
		{Symbol: "AAPL", Name: "Apple", IEXID: "1", IsEnabled: true, Type: "cs", Date: "2024-01-01"},
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.Company{Symbol: "AAPL", Name: "Apple", IEXID: "1", IsEnabled: true, Type: "cs", Date: "2024-01-01"}, list[0])
	assert.Equal(t, "MSFT", list[1].Symbol)
}

func TestCompanyGorm_List_Empty(t *testing.T) {
	t.Parallel()

	list, err := NewCompanyRepository(setupTestDB(t)).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
