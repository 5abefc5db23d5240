// Package entity defines the domain models for the companies feature.
package entity

// Company represents a listed security returned by the reference-data endpoint.
// Symbol is the unique key; the remaining fields are passed through from the provider.
type Company struct {
	Symbol    string `json:"symbol"`    // Ticker symbol (e.g., "AAPL")
	Name      string `json:"name"`      // Display name
	Date      string `json:"date"`      // Listing date reported by the provider
	IsEnabled bool   `json:"isEnabled"` // Whether the provider supports trading for the symbol
	Type      string `json:"type"`      // Security type (e.g., "cs", "et")
	IEXID     string `json:"iexId"`     // Provider-internal identifier
}
