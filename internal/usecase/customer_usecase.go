package usecase

import (
	"context"
	"errors"
	"fmt"

	"apparelstore/internal/dto"
	"apparelstore/internal/mapper"
	repo "apparelstore/internal/repository"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
	tx        repo.TransactionManager
}

func NewCustomerUsecase(customers repo.CustomerRepository, tx repo.TransactionManager) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, tx: tx}
}

func customerNotFound(id int64) string {
	return fmt.Sprintf("Customer not found with id: %d", id)
}

func (u *CustomerUsecase) List(ctx context.Context) ([]dto.CustomerDto, error) {
	items, err := u.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerDto, 0, len(items))
	for _, c := range items {
		out = append(out, mapper.CustomerToDto(c))
	}
	return out, nil
}

func (u *CustomerUsecase) GetByID(ctx context.Context, id int64) (dto.CustomerDto, bool, error) {
	c, err := u.customers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return dto.CustomerDto{}, false, nil
	}
	if err != nil {
		return dto.CustomerDto{}, false, err
	}
	return mapper.CustomerToDto(c), true, nil
}

// idが無ければ新規作成、あればUpdateと同じ
func (u *CustomerUsecase) Save(ctx context.Context, d dto.CustomerDto) (dto.CustomerDto, error) {
	if d.ID != nil {
		return u.Update(ctx, *d.ID, d)
	}
	var out dto.CustomerDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		saved, err := r.Customers().Insert(ctx, mapper.CustomerDtoToCustomer(d))
		if err != nil {
			return fromRepoError(err, "")
		}
		out = mapper.CustomerToDto(saved)
		return nil
	})
	return out, err
}

// 無ければ404エラー（PATCHと違いfound=falseでは返さない）
func (u *CustomerUsecase) Update(ctx context.Context, id int64, d dto.CustomerDto) (dto.CustomerDto, error) {
	var out dto.CustomerDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Customers().FindByID(ctx, id)
		if err != nil {
			return fromRepoError(err, customerNotFound(id))
		}
		mapper.UpdateCustomerFromDto(d, &current)
		if d.Version != nil {
			current.Version = *d.Version
		}
		saved, err := r.Customers().Update(ctx, current)
		if err != nil {
			return fromRepoError(err, customerNotFound(id))
		}
		out = mapper.CustomerToDto(saved)
		return nil
	})
	return out, err
}

// 注文が残っている顧客は409
func (u *CustomerUsecase) DeleteByID(ctx context.Context, id int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return fromRepoError(r.Customers().DeleteByID(ctx, id), customerNotFound(id))
	})
}
