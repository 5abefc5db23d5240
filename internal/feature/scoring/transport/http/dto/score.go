// Package dto はscoring HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "equity_backend/internal/feature/scoring/domain/entity"

// ScoreRequest は POST /azureml/score のボディです。
type ScoreRequest struct {
	ColumnNames []string   `json:"ColumnNames" binding:"required,min=1"`
	Values      [][]string `json:"Values" binding:"required,min=1"`
}

// ToEntity はリクエストを入力テーブルに変換します。
func (r ScoreRequest) ToEntity() entity.InputTable {
	return entity.InputTable{ColumnNames: r.ColumnNames, Values: r.Values}
}

// ScoreResponse はスコアリング結果の表示用レスポンスです。
type ScoreResponse struct {
	Message    string `json:"message"`
	JSONObject string `json:"jsonObject"`
	Succeeded  bool   `json:"succeeded"`
}

// FromResult は結果エンティティをレスポンスに変換します。
func FromResult(r entity.ScoreResult) ScoreResponse {
	return ScoreResponse{Message: r.Message, JSONObject: r.JSONObject, Succeeded: r.Succeeded}
}
