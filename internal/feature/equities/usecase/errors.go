package usecase

import "errors"

// ErrSymbolRequired is returned when a chart operation is called without a symbol.
var ErrSymbolRequired = errors.New("symbol is required")
