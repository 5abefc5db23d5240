// Package usecase は銘柄一覧の取得と企業情報の永続化に関するビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"equity_backend/internal/feature/companies/domain/entity"
)

// SymbolProvider は外部APIから銘柄一覧を取得するインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolProvider interface {
	ListSymbols(ctx context.Context) ([]entity.Company, error)
}

// CompanyRepository は企業情報の永続化レイヤーを抽象化します。
type CompanyRepository interface {
	// InsertIfAbsent は同じ銘柄コードの行が存在しない企業のみを1トランザクションで挿入し、挿入件数を返します。
	InsertIfAbsent(ctx context.Context, companies []entity.Company) (int, error)
	// List は永続化済みの企業を銘柄コード順に返します。
	List(ctx context.Context) ([]entity.Company, error)
}

// SymbolBatchStore は一覧取得から確定までの間、銘柄一覧をサーバー側で保持します。
type SymbolBatchStore interface {
	// Save は銘柄一覧を保存し、参照用のトークンを返します。
	Save(ctx context.Context, companies []entity.Company) (string, error)
	// Load はトークンに対応する銘柄一覧を返します。存在しない場合は ErrBatchNotFound を返します。
	Load(ctx context.Context, token string) ([]entity.Company, error)
}

// SymbolUsecase は銘柄一覧の取得・確定を行うユースケースです。
type SymbolUsecase struct {
	provider SymbolProvider
	repo     CompanyRepository
	batches  SymbolBatchStore
}

// NewSymbolUsecase は新しい SymbolUsecase を作成します。batches が nil の場合はトークンを発行しません。
func NewSymbolUsecase(provider SymbolProvider, repo CompanyRepository, batches SymbolBatchStore) *SymbolUsecase {
	return &SymbolUsecase{provider: provider, repo: repo, batches: batches}
}

// ListSymbols は外部APIから先頭50件の銘柄を取得します。この時点では永続化しません。
// 取得に失敗した場合は空の一覧を返します。一覧はバッチストアに保存され、そのトークンも返します。
func (u *SymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Company, string) {
	companies, err := u.provider.ListSymbols(ctx)
	if err != nil {
		slog.Warn("failed to list symbols", "error", err)
		return []entity.Company{}, ""
	}
	if len(companies) == 0 || u.batches == nil {
		return companies, ""
	}

	token, err := u.batches.Save(ctx, companies)
	if err != nil {
		slog.Warn("failed to save symbol batch", "count", len(companies), "error", err)
		return companies, ""
	}
	return companies, token
}

// ConfirmSymbols は未登録の企業のみを永続化し、挿入件数を返します。
func (u *SymbolUsecase) ConfirmSymbols(ctx context.Context, companies []entity.Company) (int, error) {
	if len(companies) == 0 {
		return 0, nil
	}
	n, err := u.repo.InsertIfAbsent(ctx, companies)
	if err != nil {
		return 0, fmt.Errorf("confirm symbols: %w", err)
	}
	return n, nil
}

// ConfirmSymbolBatch はトークンで保存済みの銘柄一覧を読み出して確定します。
func (u *SymbolUsecase) ConfirmSymbolBatch(ctx context.Context, token string) ([]entity.Company, int, error) {
	if u.batches == nil || token == "" {
		return nil, 0, ErrBatchNotFound
	}
	companies, err := u.batches.Load(ctx, token)
	if err != nil {
		return nil, 0, err
	}
	n, err := u.ConfirmSymbols(ctx, companies)
	if err != nil {
		return nil, 0, err
	}
	return companies, n, nil
}

// ListCompanies は永続化済みの企業一覧を返します。
func (u *SymbolUsecase) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return u.repo.List(ctx)
}
