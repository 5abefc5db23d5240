// Package di provides dependency injection factories for creating application components.
package di

import (
	"equity_backend/internal/feature/scoring/adapters/azureml"
	"equity_backend/internal/platform/externalapi/iex"
	apphttp "equity_backend/internal/platform/http"
)

// NewMarket creates an IEX Market with an HTTP client using the configured timeout.
func NewMarket(cfg iex.Config) *iex.Market {
	cfg = cfg.WithDefaults()
	return iex.NewMarket(cfg, apphttp.NewClient(apphttp.NewHTTPClient(cfg.Timeout)))
}

// NewScorer creates an Azure ML scoring client with an HTTP client using the configured timeout.
func NewScorer(cfg azureml.Config) *azureml.Client {
	cfg = cfg.WithDefaults()
	return azureml.NewClient(cfg, apphttp.NewClient(apphttp.NewHTTPClient(cfg.Timeout)))
}
