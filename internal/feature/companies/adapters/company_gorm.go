package adapters

import (
	"context"
	"errors"

	"equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/companies/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// companyGorm is a GORM implementation of the CompanyRepository interface.
type companyGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure companyGorm implements CompanyRepository.
var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyRepository creates a new instance of companyGorm.
func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

// InsertIfAbsent inserts every company whose symbol is not stored yet, in one transaction.
// Blank symbols are skipped. A primary-key conflict from a concurrent writer counts as already present.
func (r *companyGorm) InsertIfAbsent(ctx context.Context, companies []entity.Company) (int, error) {
	if len(companies) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range companies {
			if c.Symbol == "" {
				continue
			}

			var count int64
			if err := tx.Model(&CompanyModel{}).Where("symbol = ?", c.Symbol).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			m := CompanyModelFromEntity(c)
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if res.Error != nil {
				if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
					continue
				}
				return res.Error
			}
			inserted += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// List returns all stored companies ordered by symbol.
func (r *companyGorm) List(ctx context.Context) ([]entity.Company, error) {
	var rows []CompanyModel
	if err := r.db.WithContext(ctx).Order("symbol ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out, nil
}
