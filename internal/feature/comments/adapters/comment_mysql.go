// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finstock_backend/internal/feature/comments/domain/entity"
	"finstock_backend/internal/feature/comments/usecase"
)

// commentMySQL はCommentRepositoryインターフェースのMySQL実装です。
type commentMySQL struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentRepository は指定されたDB接続でcommentMySQLリポジトリの新しいインスタンスを生成します。
func NewCommentRepository(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// List はすべてのコメントを返します。
func (r *commentMySQL) List(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID はIDでコメントを取得します。存在しない場合は (nil, nil) を返します。
func (r *commentMySQL) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create はコメントをデータベースに追加し、採番されたIDをエンティティに設定します。
func (r *commentMySQL) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update はタイトルと本文のみを更新し、影響行数を返します。
// stock_idとcreated_onは更新対象に含めません。
func (r *commentMySQL) Update(ctx context.Context, id uint, title, content string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":   title,
			"content": content,
		})
	return res.RowsAffected, res.Error
}

// Delete はIDで指定したコメントを削除し、影響行数を返します。
func (r *commentMySQL) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, id)
	return res.RowsAffected, res.Error
}
