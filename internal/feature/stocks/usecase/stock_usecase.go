// Package usecase はstocksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/stocks/domain/entity"
)

// StockRepository は銘柄エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StockRepository interface {
	// List はフィルタに一致する銘柄を返します。結果が空でもエラーにはなりません。
	List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error)

	// FindByID はIDで銘柄を取得します。存在しない場合は (nil, nil) を返します。
	// 紐付くコメントを埋め込んで返します。
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)

	// FindBySymbol はティッカーシンボルで銘柄を取得します（大文字小文字は区別しません）。
	// 存在しない場合は (nil, nil) を返します。
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// Create は新しい銘柄を永続化し、採番されたIDをエンティティに設定します。
	Create(ctx context.Context, stock *entity.Stock) error

	// Update はIDで指定した銘柄を全フィールド更新し、影響行数を返します。
	Update(ctx context.Context, id uint, stock entity.Stock) (int64, error)

	// Delete はIDで指定した銘柄を削除し、影響行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)

	// Exists はIDの銘柄が存在するかを返します。
	Exists(ctx context.Context, id uint) (bool, error)
}

// StockUsecase は銘柄カタログ操作のビジネスロジックを提供します。
type StockUsecase struct {
	stocks StockRepository
}

// NewStockUsecase はStockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(stocks StockRepository) *StockUsecase {
	return &StockUsecase{stocks: stocks}
}

// List はフィルタに一致する銘柄の一覧を返します。
func (u *StockUsecase) List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error) {
	return u.stocks.List(ctx, query)
}

// GetByID はIDで銘柄を取得します。存在しない場合はNotFoundを返します。
func (u *StockUsecase) GetByID(ctx context.Context, id uint) (*entity.Stock, error) {
	stock, err := u.stocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, apperr.NotFound("stock not found")
	}
	return stock, nil
}

// GetBySymbol はシンボルで銘柄を取得します。存在しない場合はNotFoundを返します。
func (u *StockUsecase) GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	stock, err := u.stocks.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, apperr.NotFound("stock not found")
	}
	return stock, nil
}

// Create は新しい銘柄を登録します。フィールドのバリデーションはトランスポート層の責務です。
func (u *StockUsecase) Create(ctx context.Context, stock *entity.Stock) error {
	return u.stocks.Create(ctx, stock)
}

// Update は銘柄を全フィールド更新します。影響行数が0の場合はNotFoundを返します。
func (u *StockUsecase) Update(ctx context.Context, id uint, stock entity.Stock) error {
	affected, err := u.stocks.Update(ctx, id, stock)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("stock not found")
	}
	return nil
}

// Delete は銘柄を削除します。影響行数が0の場合はNotFoundを返します。
func (u *StockUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.stocks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("stock not found")
	}
	return nil
}

// Exists は銘柄の存在チェックです。コメント・ポートフォリオの事前条件として使われます。
func (u *StockUsecase) Exists(ctx context.Context, id uint) (bool, error) {
	return u.stocks.Exists(ctx, id)
}
