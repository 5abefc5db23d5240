// Package handler provides HTTP handlers for table maintenance.
package handler

import (
	"context"
	"net/http"

	"equity_backend/internal/api"
	"equity_backend/internal/feature/maintenance/domain/entity"

	"github.com/gin-gonic/gin"
)

// MaintenanceUsecase is the maintenance usecase as seen by the handler.
type MaintenanceUsecase interface {
	ClearTables(ctx context.Context, scope string) (entity.TableCounts, error)
	Counts(ctx context.Context) (entity.TableCounts, error)
}

// RefreshHandler serves the table maintenance endpoints.
type RefreshHandler struct {
	uc MaintenanceUsecase
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(uc MaintenanceUsecase) *RefreshHandler {
	return &RefreshHandler{uc: uc}
}

// Counts reports the current row count of each table.
// GET /refresh -> {"Companies":n,"Charts":n}
func (h *RefreshHandler) Counts(c *gin.Context) {
	counts, err := h.uc.Counts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Clear deletes rows selected by the table query parameter and reports the counts afterwards.
// POST /refresh?table=all|Companies|Charts
func (h *RefreshHandler) Clear(c *gin.Context) {
	counts, err := h.uc.ClearTables(c.Request.Context(), c.Query("table"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}
