// Package dto はAzure ML request/responseサービスの送受信データを定義します。
package dto

// StringTable は列名と文字列値の2次元配列です。
type StringTable struct {
	ColumnNames []string   `json:"ColumnNames"`
	Values      [][]string `json:"Values"`
}

// ScoreRequest はスコアリングエンドポイントへのリクエストボディです。
type ScoreRequest struct {
	Inputs           map[string]StringTable `json:"Inputs"`
	GlobalParameters map[string]string      `json:"GlobalParameters"`
}

// RootObject はスコアリング結果のレスポンスボディです。
type RootObject struct {
	Results Results `json:"Results"`
}

// Results は出力名ごとの結果です。
type Results struct {
	Output1 Output1 `json:"output1"`
}

// Output1 は output1 の型と値です。
type Output1 struct {
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

// Value はスコアリング結果のテーブルです。
type Value struct {
	ColumnNames []string   `json:"ColumnNames"`
	ColumnTypes []string   `json:"ColumnTypes"`
	Values      [][]string `json:"Values"`
}
