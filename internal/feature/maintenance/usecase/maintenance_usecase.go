// Package usecase implements bulk maintenance of the cached quote tables.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"equity_backend/internal/feature/maintenance/domain/entity"
)

// TableRepository abstracts bulk deletes and row counts over the companies and equities tables.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TableRepository interface {
	// Clear deletes rows for scope in one transaction and returns the counts after the commit.
	Clear(ctx context.Context, scope entity.ClearScope) (entity.TableCounts, error)
	// Counts returns the current row count of each table.
	Counts(ctx context.Context) (entity.TableCounts, error)
}

// MaintenanceUsecase clears cached tables and reports their sizes.
type MaintenanceUsecase struct {
	repo TableRepository
}

// NewMaintenanceUsecase creates a new MaintenanceUsecase with the given repository.
func NewMaintenanceUsecase(repo TableRepository) *MaintenanceUsecase {
	return &MaintenanceUsecase{repo: repo}
}

// ClearTables deletes rows selected by the external scope string ("all", "Companies" or "Charts")
// and returns the table counts afterwards. An unknown or empty scope deletes nothing.
func (u *MaintenanceUsecase) ClearTables(ctx context.Context, scope string) (entity.TableCounts, error) {
	s, ok := entity.ParseScope(scope)
	if !ok {
		slog.Warn("unknown clear scope, nothing deleted", "scope", scope)
		return u.Counts(ctx)
	}

	counts, err := u.repo.Clear(ctx, s)
	if err != nil {
		return entity.TableCounts{}, fmt.Errorf("clear %s: %w", s, err)
	}
	slog.Info("tables cleared", "scope", s.String(), "companies", counts.Companies, "charts", counts.Charts)
	return counts, nil
}

// Counts returns the current row count of each table.
func (u *MaintenanceUsecase) Counts(ctx context.Context) (entity.TableCounts, error) {
	counts, err := u.repo.Counts(ctx)
	if err != nil {
		return entity.TableCounts{}, fmt.Errorf("count tables: %w", err)
	}
	return counts, nil
}
