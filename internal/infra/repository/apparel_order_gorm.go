package repository

import (
	"context"
	"time"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApparelOrderGormRepository struct {
	db *gorm.DB
}

func NewApparelOrderGormRepository(db *gorm.DB) *ApparelOrderGormRepository {
	return &ApparelOrderGormRepository{db: db}
}

// 顧客・明細（商品付き）・出荷をまとめて読む
func (r *ApparelOrderGormRepository) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("ApparelOrderLines", orderByID).
		Preload("ApparelOrderLines.Apparel").
		Preload("Shipments", orderByID)
}

func (r *ApparelOrderGormRepository) FindByID(ctx context.Context, id int64) (model.ApparelOrder, error) {
	var o model.ApparelOrder
	if err := r.withChildren(r.db.WithContext(ctx)).First(&o, id).Error; err != nil {
		return model.ApparelOrder{}, translateError(err)
	}
	return o, nil
}

func (r *ApparelOrderGormRepository) FindAll(ctx context.Context) ([]model.ApparelOrder, error) {
	var items []model.ApparelOrder
	if err := r.withChildren(r.db.WithContext(ctx)).Order("id asc").Find(&items).Error; err != nil {
		return []model.ApparelOrder{}, err
	}
	return items, nil
}

// 注文本体だけを作る。明細/出荷は呼び出し側で書く
func (r *ApparelOrderGormRepository) Insert(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error) {
	o.ID = 0
	o.Version = 0
	o.CreatedAt = time.Time{}
	o.UpdatedAt = time.Time{}
	if o.Customer != nil && o.CustomerID == 0 {
		o.CustomerID = o.Customer.ID
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&o).Error; err != nil {
		return model.ApparelOrder{}, translateError(err)
	}
	o.SyncChildren()
	return o, nil
}

func (r *ApparelOrderGormRepository) Update(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error) {
	if o.Customer != nil && o.CustomerID == 0 {
		o.CustomerID = o.Customer.ID
	}
	db := r.db.WithContext(ctx)
	res := db.Model(&model.ApparelOrder{}).
		Where("id = ? AND version = ?", o.ID, o.Version).
		Updates(map[string]interface{}{
			"customer_id":    o.CustomerID,
			"payment_amount": o.PaymentAmount,
			"status":         o.Status,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     r.db.NowFunc(),
		})
	if res.Error != nil {
		return model.ApparelOrder{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ApparelOrder{}, missOrConflict(db, &model.ApparelOrder{}, o.ID)
	}
	return r.FindByID(ctx, o.ID)
}

// 注文行だけを消す。明細/出荷はFKのCASCADEか呼び出し側で消す
func (r *ApparelOrderGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ApparelOrder{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 子テーブルから順に全削除
func (r *ApparelOrderGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.ApparelOrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.ApparelOrderShipment{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.ApparelOrder{}).Error
	})
}
