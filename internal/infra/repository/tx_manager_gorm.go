package repository

import (
	"context"

	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	apparels   repo.ApparelRepository
	customers  repo.CustomerRepository
	orders     repo.ApparelOrderRepository
	orderLines repo.ApparelOrderLineRepository
	shipments  repo.ApparelOrderShipmentRepository
}

func (r *txReposGorm) Apparels() repo.ApparelRepository                   { return r.apparels }
func (r *txReposGorm) Customers() repo.CustomerRepository                 { return r.customers }
func (r *txReposGorm) ApparelOrders() repo.ApparelOrderRepository         { return r.orders }
func (r *txReposGorm) ApparelOrderLines() repo.ApparelOrderLineRepository { return r.orderLines }
func (r *txReposGorm) Shipments() repo.ApparelOrderShipmentRepository     { return r.shipments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			apparels:   NewApparelGormRepository(tx),
			customers:  NewCustomerGormRepository(tx),
			orders:     NewApparelOrderGormRepository(tx),
			orderLines: NewApparelOrderLineGormRepository(tx),
			shipments:  NewApparelOrderShipmentGormRepository(tx),
		}
		return fn(r)
	})
}
