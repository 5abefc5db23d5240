// Package router はHTTPルーティングを定義します。
package router

import (
	"equity_backend/internal/app/di"
	platformhandler "equity_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter は全エンドポイントを登録したginエンジンを返します。
func NewRouter(h di.Handlers) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", h.Readiness.Ready)

	// 銘柄一覧の取得と確定
	r.GET("/symbols", h.Symbols.List)
	r.POST("/symbols/populate", h.Symbols.Populate)

	// 日足チャート
	chart := r.Group("/chart")
	{
		chart.GET("", h.Charts.GetChart)
		chart.GET("/stored", h.Charts.GetStoredChart)
		chart.GET("/image", h.Charts.GetChartImage)
		chart.POST("/save", h.Charts.SaveChart)
		chart.POST("/refresh", h.Ingest.RefreshAll)
	}

	// テーブルの件数確認と削除
	r.GET("/refresh", h.Refresh.Counts)
	r.POST("/refresh", h.Refresh.Clear)

	// 機械学習スコアリング
	r.GET("/azureml", h.Scoring.Index)
	r.POST("/azureml/score", h.Scoring.Score)

	return r
}
