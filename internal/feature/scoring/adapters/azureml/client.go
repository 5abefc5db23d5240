package azureml

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"equity_backend/internal/feature/scoring/adapters/azureml/dto"
	"equity_backend/internal/feature/scoring/domain/entity"
	"equity_backend/internal/feature/scoring/usecase"
	apphttp "equity_backend/internal/platform/http"
)

// ErrEndpointNotConfigured はエンドポイントURLが未設定の場合に返されます。
var ErrEndpointNotConfigured = errors.New("azureml: endpoint not configured")

// Client はスコアリングエンドポイントにJSONをPOSTします。
type Client struct {
	cfg    Config
	client *apphttp.Client
}

// ClientがScorerを実装していることをコンパイル時に検証します。
var _ usecase.Scorer = (*Client)(nil)

// NewClient は新しい Client を生成します。
func NewClient(cfg Config, client *apphttp.Client) *Client {
	return &Client{cfg: cfg.WithDefaults(), client: client}
}

// Score は入力テーブルを送信し、生のレスポンスボディと整形済みの結果を返します。
// 2xx以外は *apphttp.StatusError をそのまま返します。
func (c *Client) Score(ctx context.Context, table entity.InputTable) (entity.ScoreResponse, error) {
	if c.cfg.Endpoint == "" {
		return entity.ScoreResponse{}, ErrEndpointNotConfigured
	}

	req := dto.ScoreRequest{
		Inputs: map[string]dto.StringTable{
			InputName: {ColumnNames: table.ColumnNames, Values: table.Values},
		},
		GlobalParameters: map[string]string{},
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	raw, err := c.client.PostJSON(ctx, c.cfg.Endpoint, req, header)
	if err != nil {
		return entity.ScoreResponse{}, err
	}

	formatted, err := FormatResult(raw)
	if err != nil {
		return entity.ScoreResponse{Raw: raw}, err
	}
	return entity.ScoreResponse{Raw: raw, Formatted: formatted}, nil
}

// FormatResult はレスポンスボディを RootObject として解釈し、インデント付きJSONに整形します。
func FormatResult(raw string) (string, error) {
	var root dto.RootObject
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return "", fmt.Errorf("azureml: parse result: %w", err)
	}
	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
