// Package usecase はportfolioフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"finstock_backend/internal/apperr"
	stockentity "finstock_backend/internal/feature/stocks/domain/entity"
)

// PortfolioRepository はポートフォリオ行（ユーザーと銘柄のペア）の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PortfolioRepository interface {
	// ListStocks はユーザーのポートフォリオに含まれる銘柄を返します。
	ListStocks(ctx context.Context, username string) ([]stockentity.Stock, error)

	// Add は (username, stockID) のペアを追加します。
	// 既に存在する場合はKindConflictのエラーを返します。
	Add(ctx context.Context, username string, stockID uint) error

	// Remove は (username, stockID) のペアを削除し、影響行数を返します。
	Remove(ctx context.Context, username string, stockID uint) (int64, error)
}

// StockFinder はシンボルによる銘柄解決を抽象化します。stocksユースケースが実装します。
type StockFinder interface {
	GetBySymbol(ctx context.Context, symbol string) (*stockentity.Stock, error)
}

// PortfolioUsecase はポートフォリオ操作のビジネスロジックを提供します。
// 「同じ銘柄は一度しか追加できない」「対象銘柄が存在すること」という不変条件をここで強制します。
type PortfolioUsecase struct {
	portfolio PortfolioRepository
	stocks    StockFinder
}

// NewPortfolioUsecase はPortfolioUsecaseの新しいインスタンスを生成します。
func NewPortfolioUsecase(portfolio PortfolioRepository, stocks StockFinder) *PortfolioUsecase {
	return &PortfolioUsecase{portfolio: portfolio, stocks: stocks}
}

// List はユーザーのポートフォリオに含まれる銘柄を返します。
// usernameが空の場合はInvalidArgumentを返します。
func (u *PortfolioUsecase) List(ctx context.Context, username string) ([]stockentity.Stock, error) {
	if username == "" {
		return nil, apperr.InvalidArgument("username cannot be empty")
	}
	return u.portfolio.ListStocks(ctx, username)
}

// Add はシンボルで解決した銘柄をユーザーのポートフォリオに追加します。
// 銘柄が存在しない場合はNotFound、既にポートフォリオにある場合はConflictを返します。
// 重複判定は大文字小文字を区別しません。
func (u *PortfolioUsecase) Add(ctx context.Context, username, symbol string) error {
	if username == "" {
		return apperr.InvalidArgument("username cannot be empty")
	}
	if symbol == "" {
		return apperr.InvalidArgument("symbol cannot be empty")
	}

	stock, err := u.stocks.GetBySymbol(ctx, symbol)
	if err != nil {
		return err
	}

	current, err := u.portfolio.ListStocks(ctx, username)
	if err != nil {
		return err
	}
	for _, s := range current {
		if strings.EqualFold(s.Symbol, symbol) {
			return apperr.Conflict("cannot add same stock to portfolio")
		}
	}

	// 同時実行で重複チェックをすり抜けた場合は、複合主キー違反を
	// アダプタがConflictにマッピングして返す。
	return u.portfolio.Add(ctx, username, stock.ID)
}

// Remove はシンボルで解決した銘柄をユーザーのポートフォリオから取り除きます。
// 銘柄が存在しない場合、またはポートフォリオに含まれていない場合はNotFoundを返します。
func (u *PortfolioUsecase) Remove(ctx context.Context, username, symbol string) error {
	if username == "" {
		return apperr.InvalidArgument("username cannot be empty")
	}
	if symbol == "" {
		return apperr.InvalidArgument("symbol cannot be empty")
	}

	stock, err := u.stocks.GetBySymbol(ctx, symbol)
	if err != nil {
		return err
	}

	affected, err := u.portfolio.Remove(ctx, username, stock.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("stock is not in portfolio")
	}
	return nil
}
