// Package adapters provides the GORM implementation of the maintenance table repository.
package adapters

import (
	"context"

	companyadapters "equity_backend/internal/feature/companies/adapters"
	equityadapters "equity_backend/internal/feature/equities/adapters"
	"equity_backend/internal/feature/maintenance/domain/entity"
	"equity_backend/internal/feature/maintenance/usecase"

	"gorm.io/gorm"
)

// tableGorm clears and counts the companies and equities tables.
type tableGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure tableGorm implements TableRepository.
var _ usecase.TableRepository = (*tableGorm)(nil)

// NewTableRepository creates a new instance of tableGorm.
func NewTableRepository(db *gorm.DB) *tableGorm {
	return &tableGorm{db: db}
}

// Clear deletes rows for scope in one transaction, then returns the committed counts.
func (r *tableGorm) Clear(ctx context.Context, scope entity.ClearScope) (entity.TableCounts, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch scope {
		case entity.ScopeAll:
			if err := deleteAll(tx, &equityadapters.EquityModel{}); err != nil {
				return err
			}
			return deleteAll(tx, &companyadapters.CompanyModel{})
		case entity.ScopeCharts:
			return deleteAll(tx, &equityadapters.EquityModel{})
		case entity.ScopeCompanies:
			// 日足を1件も持たない企業のみ
			withBars := tx.Session(&gorm.Session{NewDB: true}).
				Model(&equityadapters.EquityModel{}).
				Select("1").
				Where("equities.symbol = companies.symbol")
			return tx.Where("NOT EXISTS (?)", withBars).Delete(&companyadapters.CompanyModel{}).Error
		default:
			return nil
		}
	})
	if err != nil {
		return entity.TableCounts{}, err
	}
	return r.Counts(ctx)
}

// Counts returns the current row count of each table.
func (r *tableGorm) Counts(ctx context.Context) (entity.TableCounts, error) {
	var counts entity.TableCounts
	db := r.db.WithContext(ctx)
	if err := db.Model(&companyadapters.CompanyModel{}).Count(&counts.Companies).Error; err != nil {
		return entity.TableCounts{}, err
	}
	if err := db.Model(&equityadapters.EquityModel{}).Count(&counts.Charts).Error; err != nil {
		return entity.TableCounts{}, err
	}
	return counts, nil
}

func deleteAll(tx *gorm.DB, model any) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
}
