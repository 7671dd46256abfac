package repository

import (
	"context"

	"apparelstore/internal/domain/model"
)

type ApparelOrderShipmentRepository interface {
	FindByID(ctx context.Context, id int64) (model.ApparelOrderShipment, error)
	FindAll(ctx context.Context) ([]model.ApparelOrderShipment, error)
	// 注文に紐づく出荷一覧
	ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderShipment, error)
	Insert(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error)
	Update(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
	DeleteAll(ctx context.Context) error
}
