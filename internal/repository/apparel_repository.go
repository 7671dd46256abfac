package repository

import (
	"context"

	"apparelstore/internal/domain/model"
)

// 商品の永続化。保存はInsert/Updateを呼び分ける。
type ApparelRepository interface {
	FindByID(ctx context.Context, id int64) (model.Apparel, error)
	FindAll(ctx context.Context) ([]model.Apparel, error)

	// 名前の部分一致（大文字小文字無視）
	ListByNameContaining(ctx context.Context, name string, page PageRequest) (Page[model.Apparel], error)
	// 名前とスタイル両方の部分一致。空文字は全件に一致
	ListByNameAndStyleContaining(ctx context.Context, name string, style string, page PageRequest) (Page[model.Apparel], error)

	Insert(ctx context.Context, a model.Apparel) (model.Apparel, error)
	// a.Versionが保存済みのversionと一致する時だけ更新
	Update(ctx context.Context, a model.Apparel) (model.Apparel, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
