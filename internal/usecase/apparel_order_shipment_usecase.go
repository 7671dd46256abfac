package usecase

import (
	"context"
	"fmt"

	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"
	"apparelstore/internal/mapper"
	repo "apparelstore/internal/repository"
)

type ApparelOrderShipmentUsecase struct {
	shipments repo.ApparelOrderShipmentRepository
	tx        repo.TransactionManager
}

func NewApparelOrderShipmentUsecase(shipments repo.ApparelOrderShipmentRepository, tx repo.TransactionManager) *ApparelOrderShipmentUsecase {
	return &ApparelOrderShipmentUsecase{shipments: shipments, tx: tx}
}

// 注文の存在は確認しない（無ければ空）
func (u *ApparelOrderShipmentUsecase) List(ctx context.Context, orderID int64) ([]dto.ApparelOrderShipmentDto, error) {
	items, err := u.shipments.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApparelOrderShipmentDto, 0, len(items))
	for _, s := range items {
		out = append(out, mapper.ApparelOrderShipmentToDto(s))
	}
	return out, nil
}

func (u *ApparelOrderShipmentUsecase) Get(ctx context.Context, orderID, shipmentID int64) (dto.ApparelOrderShipmentDto, error) {
	s, err := findOwnedShipment(ctx, u.shipments, orderID, shipmentID)
	if err != nil {
		return dto.ApparelOrderShipmentDto{}, err
	}
	return mapper.ApparelOrderShipmentToDto(s), nil
}

func (u *ApparelOrderShipmentUsecase) Create(ctx context.Context, orderID int64, d dto.ApparelOrderShipmentDto) (dto.ApparelOrderShipmentDto, error) {
	var out dto.ApparelOrderShipmentDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.ApparelOrders().FindByID(ctx, orderID)
		if err != nil {
			return fromRepoError(err, apparelOrderNotFound(orderID))
		}

		order.AddShipment(mapper.ApparelOrderShipmentDtoToApparelOrderShipment(d))
		saved, err := r.Shipments().Insert(ctx, order.Shipments[len(order.Shipments)-1])
		if err != nil {
			return fromRepoError(err, apparelOrderNotFound(orderID))
		}
		out = mapper.ApparelOrderShipmentToDto(saved)
		return nil
	})
	return out, err
}

// 出荷日・運送会社・追跡番号を上書き
func (u *ApparelOrderShipmentUsecase) Update(ctx context.Context, orderID, shipmentID int64, d dto.ApparelOrderShipmentDto) (dto.ApparelOrderShipmentDto, error) {
	var out dto.ApparelOrderShipmentDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := findOwnedShipment(ctx, r.Shipments(), orderID, shipmentID)
		if err != nil {
			return err
		}
		mapper.UpdateShipmentFromDto(d, &s)
		if d.Version != nil {
			s.Version = *d.Version
		}
		saved, err := r.Shipments().Update(ctx, s)
		if err != nil {
			return fromRepoError(err, shipmentNotFound(shipmentID))
		}
		out = mapper.ApparelOrderShipmentToDto(saved)
		return nil
	})
	return out, err
}

func (u *ApparelOrderShipmentUsecase) Delete(ctx context.Context, orderID, shipmentID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := findOwnedShipment(ctx, r.Shipments(), orderID, shipmentID)
		if err != nil {
			return err
		}

		// 注文側からも外してから消す
		o, err := r.ApparelOrders().FindByID(ctx, orderID)
		if err != nil {
			return fromRepoError(err, apparelOrderNotFound(orderID))
		}
		removed, ok := o.RemoveShipment(s.ID)
		if !ok {
			return NotFound("Shipment not found for Apparel Order with id: %d", orderID)
		}
		return fromRepoError(r.Shipments().DeleteByID(ctx, removed.ID), shipmentNotFound(shipmentID))
	})
}

func shipmentNotFound(id int64) string {
	return fmt.Sprintf("Shipment not found with id: %d", id)
}

// 出荷idで引いてから、注文idが一致するかを見る
func findOwnedShipment(ctx context.Context, shipments repo.ApparelOrderShipmentRepository, orderID, shipmentID int64) (model.ApparelOrderShipment, error) {
	s, err := shipments.FindByID(ctx, shipmentID)
	if err != nil {
		return model.ApparelOrderShipment{}, fromRepoError(err, shipmentNotFound(shipmentID))
	}
	if s.ApparelOrderID != orderID {
		return model.ApparelOrderShipment{}, NotFound("Shipment not found for Apparel Order with id: %d", orderID)
	}
	return s, nil
}
