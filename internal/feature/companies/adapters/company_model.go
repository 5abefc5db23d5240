// Package adapters provides repository implementations for the companies feature.
package adapters

import "equity_backend/internal/feature/companies/domain/entity"

// CompanyModel is the GORM model for the companies table.
// Rows are created once per symbol and never updated.
type CompanyModel struct {
	Symbol    string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:255;not null;default:''"`
	Date      string `gorm:"size:16"`
	IsEnabled bool   `gorm:"not null;default:false"`
	Type      string `gorm:"size:16"`
	IEXID     string `gorm:"column:iex_id;size:32"`
}

// TableName returns the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts the GORM model to a domain entity.
func (m CompanyModel) ToEntity() entity.Company {
	return entity.Company{
		Symbol:    m.Symbol,
		Name:      m.Name,
		Date:      m.Date,
		IsEnabled: m.IsEnabled,
		Type:      m.Type,
		IEXID:     m.IEXID,
	}
}

// CompanyModelFromEntity converts a domain entity to a GORM model.
func CompanyModelFromEntity(c entity.Company) CompanyModel {
	return CompanyModel{
		Symbol:    c.Symbol,
		Name:      c.Name,
		Date:      c.Date,
		IsEnabled: c.IsEnabled,
		Type:      c.Type,
		IEXID:     c.IEXID,
	}
}
