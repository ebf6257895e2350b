// Package usecase はcommentsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"finstock_backend/internal/apperr"
	"finstock_backend/internal/feature/comments/domain/entity"
)

// CommentRepository はコメントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CommentRepository interface {
	// List はすべてのコメントを返します。
	List(ctx context.Context) ([]entity.Comment, error)

	// FindByID はIDでコメントを取得します。存在しない場合は (nil, nil) を返します。
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create は新しいコメントを永続化し、採番されたIDをエンティティに設定します。
	Create(ctx context.Context, comment *entity.Comment) error

	// Update はIDで指定したコメントのタイトルと本文を更新し、影響行数を返します。
	Update(ctx context.Context, id uint, title, content string) (int64, error)

	// Delete はIDで指定したコメントを削除し、影響行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)
}

// StockChecker は銘柄の存在チェックを抽象化します。stocksユースケースが実装します。
type StockChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase はコメント操作のビジネスロジックを提供します。
// コメント作成時の「銘柄が存在すること」という事前条件をここで強制します。
type CommentUsecase struct {
	comments CommentRepository
	stocks   StockChecker
}

// NewCommentUsecase はCommentUsecaseの新しいインスタンスを生成します。
func NewCommentUsecase(comments CommentRepository, stocks StockChecker) *CommentUsecase {
	return &CommentUsecase{comments: comments, stocks: stocks}
}

// Create は指定された銘柄に紐づくコメントを作成します。
// 銘柄が存在しない場合はNotFoundを返し、コメントは一切永続化されません。
// 銘柄への紐付けは作成時の一度きりで、以降の更新では変更できません。
func (u *CommentUsecase) Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
	exists, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("stock does not exist")
	}

	comment := &entity.Comment{
		Title:   title,
		Content: content,
		StockID: &stockID,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List はすべてのコメントを返します。空のリストも正常な結果です。
func (u *CommentUsecase) List(ctx context.Context) ([]entity.Comment, error) {
	return u.comments.List(ctx)
}

// GetByID はIDでコメントを取得します。存在しない場合はNotFoundを返します。
func (u *CommentUsecase) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	comment, err := u.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("comment not found")
	}
	return comment, nil
}

// Update はコメントのタイトルと本文を更新します。影響行数が0の場合はNotFoundを返します。
func (u *CommentUsecase) Update(ctx context.Context, id uint, title, content string) error {
	affected, err := u.comments.Update(ctx, id, title, content)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("comment not found")
	}
	return nil
}

// Delete はコメントを削除します。影響行数が0の場合はNotFoundを返します。
func (u *CommentUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("comment not found")
	}
	return nil
}
