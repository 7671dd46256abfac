package repository

import (
	"context"

	"apparelstore/internal/domain/model"
)

type ApparelOrderLineRepository interface {
	FindByID(ctx context.Context, id int64) (model.ApparelOrderLine, error)
	FindAll(ctx context.Context) ([]model.ApparelOrderLine, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderLine, error)
	Insert(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error)
	// 注文IDを付けて一括作成
	CreateBulk(ctx context.Context, orderID int64, lines []model.ApparelOrderLine) ([]model.ApparelOrderLine, error)
	Update(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
	DeleteAll(ctx context.Context) error
}
