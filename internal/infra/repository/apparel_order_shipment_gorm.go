package repository

import (
	"context"
	"time"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

type ApparelOrderShipmentGormRepository struct {
	db *gorm.DB
}

func NewApparelOrderShipmentGormRepository(db *gorm.DB) *ApparelOrderShipmentGormRepository {
	return &ApparelOrderShipmentGormRepository{db: db}
}

func (r *ApparelOrderShipmentGormRepository) FindByID(ctx context.Context, id int64) (model.ApparelOrderShipment, error) {
	var s model.ApparelOrderShipment
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return model.ApparelOrderShipment{}, translateError(err)
	}
	return s, nil
}

func (r *ApparelOrderShipmentGormRepository) FindAll(ctx context.Context) ([]model.ApparelOrderShipment, error) {
	var items []model.ApparelOrderShipment
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.ApparelOrderShipment{}, err
	}
	return items, nil
}

// 注文の存在チェックはしない。無ければ空
func (r *ApparelOrderShipmentGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderShipment, error) {
	var items []model.ApparelOrderShipment
	if err := r.db.WithContext(ctx).
		Where("apparel_order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.ApparelOrderShipment{}, err
	}
	return items, nil
}

func (r *ApparelOrderShipmentGormRepository) Insert(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error) {
	s.ID = 0
	s.Version = 0
	s.CreatedAt = time.Time{}
	s.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.ApparelOrderShipment{}, translateError(err)
	}
	return s, nil
}

func (r *ApparelOrderShipmentGormRepository) Update(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.ApparelOrderShipment{}).
		Where("id = ? AND version = ?", s.ID, s.Version).
		Updates(map[string]interface{}{
			"apparel_order_id": s.ApparelOrderID,
			"shipment_date":    s.ShipmentDate,
			"carrier":          s.Carrier,
			"tracking_number":  s.TrackingNumber,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       r.db.NowFunc(),
		})
	if res.Error != nil {
		return model.ApparelOrderShipment{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ApparelOrderShipment{}, missOrConflict(db, &model.ApparelOrderShipment{}, s.ID)
	}
	return r.FindByID(ctx, s.ID)
}

func (r *ApparelOrderShipmentGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ApparelOrderShipment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ApparelOrderShipmentGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Where("apparel_order_id = ?", orderID).Delete(&model.ApparelOrderShipment{}).Error
}

func (r *ApparelOrderShipmentGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ApparelOrderShipment{}).Error
}
