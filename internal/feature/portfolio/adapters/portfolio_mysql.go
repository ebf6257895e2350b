// Package adapters はportfolioフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/portfolio/domain/entity"
	"finstock_backend/internal/feature/portfolio/usecase"
	stockentity "finstock_backend/internal/feature/stocks/domain/entity"
)

// portfolioMySQL はPortfolioRepositoryインターフェースのMySQL実装です。
type portfolioMySQL struct {
	db *gorm.DB
}

var _ usecase.PortfolioRepository = (*portfolioMySQL)(nil)

// NewPortfolioRepository は指定されたDB接続でportfolioMySQLリポジトリの新しいインスタンスを生成します。
func NewPortfolioRepository(db *gorm.DB) *portfolioMySQL {
	return &portfolioMySQL{db: db}
}

// ListStocks はユーザーのポートフォリオに含まれる銘柄を明示的なJOINで返します。
// ORMのナビゲーションプロパティではなく、join表の行を直接たどります。
func (r *portfolioMySQL) ListStocks(ctx context.Context, username string) ([]stockentity.Stock, error) {
	var stocks []stockentity.Stock
	err := r.db.WithContext(ctx).
		Model(&stockentity.Stock{}).
		Joins("JOIN portfolio_items ON portfolio_items.stock_id = stocks.id").
		Where("portfolio_items.user_name = ?", username).
		Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// Add は (username, stockID) のペアを追加します。
// 複合主キーの重複（MySQLエラー1062、SQLiteの一意制約違反）はConflictにマッピングします。
// ユースケース層の重複チェックを同時実行ですり抜けた場合の最終防衛線です。
func (r *portfolioMySQL) Add(ctx context.Context, username string, stockID uint) error {
	item := entity.PortfolioItem{UserName: username, StockID: stockID}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if isDuplicateKey(err) {
			return apperr.Conflict("cannot add same stock to portfolio")
		}
		return err
	}
	return nil
}

// Remove は (username, stockID) のペアを削除し、影響行数を返します。
func (r *portfolioMySQL) Remove(ctx context.Context, username string, stockID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_name = ? AND stock_id = ?", username, stockID).
		Delete(&entity.PortfolioItem{})
	return res.RowsAffected, res.Error
}

// isDuplicateKey はドライバ固有の一意制約違反を判定します。
func isDuplicateKey(err error) bool {
	// MySQLエラー1062: ユニークキーの重複エントリ
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// テストで使うSQLiteドライバ向け
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
