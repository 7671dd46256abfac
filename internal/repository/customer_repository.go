package repository

import (
	"context"

	"apparelstore/internal/domain/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	Insert(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) (model.Customer, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
