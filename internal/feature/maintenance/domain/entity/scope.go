// Package entity defines the domain models for the maintenance feature.
package entity

// ClearScope selects which tables a bulk clear removes rows from.
type ClearScope int

const (
	// ScopeNone clears nothing; only the table counts are reported.
	ScopeNone ClearScope = iota
	// ScopeAll removes every price bar, then every company.
	ScopeAll
	// ScopeCompanies removes only companies that have no price bars.
	ScopeCompanies
	// ScopeCharts removes every price bar.
	ScopeCharts
)

// ParseScope maps the external selector ("all", "Companies", "Charts") to a ClearScope.
// Matching is exact; anything else yields ScopeNone and false.
func ParseScope(s string) (ClearScope, bool) {
	switch s {
	case "all":
		return ScopeAll, true
	case "Companies":
		return ScopeCompanies, true
	case "Charts":
		return ScopeCharts, true
	default:
		return ScopeNone, false
	}
}

func (s ClearScope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeCompanies:
		return "Companies"
	case ScopeCharts:
		return "Charts"
	default:
		return "none"
	}
}

// TableCounts is the per-table row count reported after a clear.
type TableCounts struct {
	Companies int64 `json:"Companies"`
	Charts    int64 `json:"Charts"`
}
