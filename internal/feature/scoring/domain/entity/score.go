// Package entity はscoringフィーチャーのドメインモデルを定義します。
package entity

// InputTable はスコアリング要求の入力テーブルです（列名と値の2次元配列）。
type InputTable struct {
	ColumnNames []string   `json:"ColumnNames"`
	Values      [][]string `json:"Values"`
}

// ScoreResult はスコアリング呼び出しの表示用結果です。
// 失敗時もエラーではなくメッセージとして返されます。
type ScoreResult struct {
	Message    string `json:"message"`    // 結果または失敗内容（ステータスコード・ヘッダーを含む）
	JSONObject string `json:"jsonObject"` // 再シリアライズしたレスポンス、または失敗時のレスポンスボディ
	Succeeded  bool   `json:"succeeded"`
}

// ScoreResponse は成功時のレスポンスです。Formatted は解釈できた場合のみ設定されます。
type ScoreResponse struct {
	Raw       string
	Formatted string
}
