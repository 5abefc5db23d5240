// Package dto defines data transfer objects for the companies HTTP API.
package dto

import "equity_backend/internal/feature/companies/domain/entity"

// CompanyItem represents a company in API requests and responses.
type CompanyItem struct {
	Symbol    string `json:"symbol" binding:"required"`
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
	IsEnabled bool   `json:"isEnabled"`
	Type      string `json:"type,omitempty"`
	IEXID     string `json:"iexId,omitempty"`
}

// SymbolListResponse is returned by GET /symbols.
// Token references the server-side batch and is empty when the listing could not be stored.
type SymbolListResponse struct {
	Token     string        `json:"token,omitempty"`
	Companies []CompanyItem `json:"companies"`
}

// PopulateRequest is the body of POST /symbols/populate.
// Token takes precedence over Companies.
type PopulateRequest struct {
	Token     string        `json:"token"`
	Companies []CompanyItem `json:"companies" binding:"omitempty,dive"`
}

// PopulateResponse reports how many companies were newly stored.
type PopulateResponse struct {
	Saved     int           `json:"saved"`
	Companies []CompanyItem `json:"companies"`
}

// FromEntities converts domain companies to response items.
func FromEntities(cs []entity.Company) []CompanyItem {
	out := make([]CompanyItem, 0, len(cs))
	for _, c := range cs {
		out = append(out, CompanyItem{
			Symbol:    c.Symbol,
			Name:      c.Name,
			Date:      c.Date,
			IsEnabled: c.IsEnabled,
			Type:      c.Type,
			IEXID:     c.IEXID,
		})
	}
	return out
}

// ToEntities converts request items to domain companies.
func ToEntities(items []CompanyItem) []entity.Company {
	out := make([]entity.Company, 0, len(items))
	for _, it := range items {
		out = append(out, entity.Company{
			Symbol:    it.Symbol,
			Name:      it.Name,
			Date:      it.Date,
			IsEnabled: it.IsEnabled,
			Type:      it.Type,
			IEXID:     it.IEXID,
		})
	}
	return out
}
