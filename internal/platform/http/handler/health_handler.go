// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Health は /healthz の生存確認を処理します。依存先は確認しません。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Checker は依存先（DB・Redisなど）の疎通を確認します。
type Checker func(ctx context.Context) error

// ReadinessHandler は登録された依存先をすべて確認する /readyz を処理します。
type ReadinessHandler struct {
	checks  map[string]Checker
	timeout time.Duration
}

// NewReadinessHandler は名前付きのCheckerを受け取ります。nilのCheckerは無視されます。
func NewReadinessHandler(checks map[string]Checker) *ReadinessHandler {
	m := make(map[string]Checker, len(checks))
	for name, fn := range checks {
		if fn != nil {
			m[name] = fn
		}
	}
	return &ReadinessHandler{checks: m, timeout: 2 * time.Second}
}

// Ready はすべての依存先が応答すれば200、1つでも失敗すれば503を返します。
func (h *ReadinessHandler) Ready(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unavailable"
	}
	c.JSON(status, gin.H{"status": overall, "checks": results})
}
