// Package api はフィーチャー間で共有するHTTPレスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse はメッセージのみを返す共通レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}
