package repository

import (
	"context"

	"apparelstore/internal/domain/model"
)

// 注文の永続化。取得時は顧客・明細（商品付き）・出荷も読み込む。
// Insert/Updateは注文本体だけを書く（明細はApparelOrderLineRepositoryで書く）。
type ApparelOrderRepository interface {
	FindByID(ctx context.Context, id int64) (model.ApparelOrder, error)
	FindAll(ctx context.Context) ([]model.ApparelOrder, error)
	Insert(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error)
	Update(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
