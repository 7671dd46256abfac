package usecase

import (
	"context"
	"errors"
	"fmt"

	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"
	"apparelstore/internal/mapper"
	repo "apparelstore/internal/repository"
)

type ApparelOrderUsecase struct {
	orders repo.ApparelOrderRepository
	tx     repo.TransactionManager
}

func NewApparelOrderUsecase(orders repo.ApparelOrderRepository, tx repo.TransactionManager) *ApparelOrderUsecase {
	return &ApparelOrderUsecase{orders: orders, tx: tx}
}

func apparelOrderNotFound(id int64) string {
	return fmt.Sprintf("Apparel Order not found with id: %d", id)
}

func (u *ApparelOrderUsecase) List(ctx context.Context) ([]dto.ApparelOrderDto, error) {
	items, err := u.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApparelOrderDto, 0, len(items))
	for _, o := range items {
		out = append(out, mapper.ApparelOrderToDto(o))
	}
	return out, nil
}

func (u *ApparelOrderUsecase) GetByID(ctx context.Context, id int64) (dto.ApparelOrderDto, bool, error) {
	o, err := u.orders.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return dto.ApparelOrderDto{}, false, nil
	}
	if err != nil {
		return dto.ApparelOrderDto{}, false, err
	}
	return mapper.ApparelOrderToDto(o), true, nil
}

// 注文と明細を1トランザクションで保存する。
// 更新時は明細を作り直し、出荷はそのまま残す。DTOの出荷は使わない
func (u *ApparelOrderUsecase) Save(ctx context.Context, d dto.ApparelOrderDto) (dto.ApparelOrderDto, error) {
	var out dto.ApparelOrderDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o := mapper.ApparelOrderDtoToApparelOrder(d)

		// 顧客の解決
		if o.CustomerID == 0 {
			return ApparelOrderError("Customer id is required")
		}
		customer, err := r.Customers().FindByID(ctx, o.CustomerID)
		if errors.Is(err, repo.ErrNotFound) {
			return ApparelOrderError("Customer not found with id: %d", o.CustomerID)
		}
		if err != nil {
			return err
		}
		o.Customer = &customer

		// 更新対象の確認
		var current model.ApparelOrder
		if d.ID != nil {
			current, err = r.ApparelOrders().FindByID(ctx, *d.ID)
			if err != nil {
				return fromRepoError(err, apparelOrderNotFound(*d.ID))
			}
			o.ID = current.ID
			if d.Version == nil {
				o.Version = current.Version
			}
		}

		// 明細：商品が見つからなければ参照なしのまま付ける
		for _, ld := range d.ApparelOrderLines {
			line := mapper.ApparelOrderLineDtoToApparelOrderLine(ld)
			if ld.ApparelID != nil {
				a, err := r.Apparels().FindByID(ctx, *ld.ApparelID)
				switch {
				case err == nil:
					line.Apparel = &a
					line.ApparelID = &a.ID
				case !errors.Is(err, repo.ErrNotFound):
					return err
				}
			}
			o.AddLine(line)
		}

		var saved model.ApparelOrder
		if o.ID == 0 {
			saved, err = r.ApparelOrders().Insert(ctx, o)
		} else {
			saved, err = r.ApparelOrders().Update(ctx, o)
			if err == nil {
				err = removeLines(ctx, r, &current)
			}
		}
		if err != nil {
			return fromRepoError(err, apparelOrderNotFound(o.ID))
		}

		if _, err := r.ApparelOrderLines().CreateBulk(ctx, saved.ID, o.ApparelOrderLines); err != nil {
			return err
		}

		reloaded, err := r.ApparelOrders().FindByID(ctx, saved.ID)
		if err != nil {
			return err
		}
		out = mapper.ApparelOrderToDto(reloaded)
		return nil
	})
	return out, err
}

// 読み込み済みの明細を注文から外して消す
func removeLines(ctx context.Context, r repo.TxRepos, o *model.ApparelOrder) error {
	ids := make([]int64, 0, len(o.ApparelOrderLines))
	for _, l := range o.ApparelOrderLines {
		ids = append(ids, l.ID)
	}
	for _, id := range ids {
		removed, ok := o.RemoveLine(id)
		if !ok {
			continue
		}
		if err := r.ApparelOrderLines().DeleteByID(ctx, removed.ID); err != nil {
			return err
		}
	}
	return nil
}

// 明細・出荷・注文の順に消す
func (u *ApparelOrderUsecase) DeleteByID(ctx context.Context, id int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.ApparelOrderLines().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		if err := r.Shipments().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		return fromRepoError(r.ApparelOrders().DeleteByID(ctx, id), apparelOrderNotFound(id))
	})
}
