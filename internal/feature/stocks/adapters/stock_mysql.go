// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finstock_backend/internal/feature/stocks/domain/entity"
	"finstock_backend/internal/feature/stocks/usecase"
)

// stockMySQL はStockRepositoryインターフェースのMySQL実装です。
type stockMySQL struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockRepository は指定されたDB接続でstockMySQLリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// sortColumns はソートキーとして許可されたカラムのホワイトリストです。
// クエリ文字列から来た値をそのままORDER BYに渡さないために必要です。
var sortColumns = map[string]string{
	"symbol":      "symbol",
	"companyName": "company_name",
	"purchase":    "purchase",
	"marketCap":   "market_cap",
}

// List はフィルタに一致する銘柄を返します。
// シンボル・企業名は部分一致、ソートキーはホワイトリストで検証します。
func (r *stockMySQL) List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error) {
	q := r.db.WithContext(ctx).Model(&entity.Stock{})

	if query.Symbol != "" {
		q = q.Where("symbol LIKE ?", "%"+query.Symbol+"%")
	}
	if query.CompanyName != "" {
		q = q.Where("company_name LIKE ?", "%"+query.CompanyName+"%")
	}
	if col, ok := sortColumns[query.SortBy]; ok {
		dir := "ASC"
		if query.Descending {
			dir = "DESC"
		}
		q = q.Order(col + " " + dir)
	}

	var stocks []entity.Stock
	if err := q.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID はIDで銘柄を取得します。存在しない場合は (nil, nil) を返します。
// 紐付くコメントは2回目の明示的なクエリで取得してエンティティに埋め込みます。
func (r *stockMySQL) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", id).
		Find(&stock.Comments).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// FindBySymbol はシンボルで銘柄を取得します。大文字小文字は区別しません。
func (r *stockMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).
		Where("LOWER(symbol) = LOWER(?)", symbol).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// Create は銘柄をデータベースに追加し、採番されたIDをエンティティに設定します。
func (r *stockMySQL) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// Update はIDで指定した銘柄を全フィールド更新し、影響行数を返します。
// Selectで対象カラムを固定しているため、ゼロ値のフィールドも書き込まれます。
func (r *stockMySQL) Update(ctx context.Context, id uint, stock entity.Stock) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ?", id).
		Select("symbol", "company_name", "purchase", "last_div", "industry", "market_cap").
		Updates(entity.Stock{
			Symbol:      stock.Symbol,
			CompanyName: stock.CompanyName,
			Purchase:    stock.Purchase,
			LastDiv:     stock.LastDiv,
			Industry:    stock.Industry,
			MarketCap:   stock.MarketCap,
		})
	return res.RowsAffected, res.Error
}

// Delete はIDで指定した銘柄を削除し、影響行数を返します。
func (r *stockMySQL) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Stock{}, id)
	return res.RowsAffected, res.Error
}

// Exists はIDの銘柄が存在するかを返します。
func (r *stockMySQL) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
