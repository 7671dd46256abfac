package repository

import (
	"context"
	"time"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

type ApparelOrderLineGormRepository struct {
	db *gorm.DB
}

func NewApparelOrderLineGormRepository(db *gorm.DB) *ApparelOrderLineGormRepository {
	return &ApparelOrderLineGormRepository{db: db}
}

func (r *ApparelOrderLineGormRepository) FindByID(ctx context.Context, id int64) (model.ApparelOrderLine, error) {
	var l model.ApparelOrderLine
	if err := r.db.WithContext(ctx).Preload("Apparel").First(&l, id).Error; err != nil {
		return model.ApparelOrderLine{}, translateError(err)
	}
	return l, nil
}

func (r *ApparelOrderLineGormRepository) FindAll(ctx context.Context) ([]model.ApparelOrderLine, error) {
	var items []model.ApparelOrderLine
	if err := r.db.WithContext(ctx).Preload("Apparel").Order("id asc").Find(&items).Error; err != nil {
		return []model.ApparelOrderLine{}, err
	}
	return items, nil
}

func (r *ApparelOrderLineGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderLine, error) {
	var items []model.ApparelOrderLine
	if err := r.db.WithContext(ctx).
		Preload("Apparel").
		Where("apparel_order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.ApparelOrderLine{}, err
	}
	return items, nil
}

// 商品は参照(ApparelID)だけ書き、商品行そのものは触らない
func (r *ApparelOrderLineGormRepository) Insert(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error) {
	l = resetLine(l)
	if err := r.db.WithContext(ctx).Omit("Apparel").Create(&l).Error; err != nil {
		return model.ApparelOrderLine{}, translateError(err)
	}
	return l, nil
}

func (r *ApparelOrderLineGormRepository) CreateBulk(ctx context.Context, orderID int64, lines []model.ApparelOrderLine) ([]model.ApparelOrderLine, error) {
	if len(lines) == 0 {
		return []model.ApparelOrderLine{}, nil
	}
	apparels := make([]*model.Apparel, len(lines))
	items := make([]model.ApparelOrderLine, 0, len(lines))
	for i, l := range lines {
		apparels[i] = l.Apparel
		l = resetLine(l)
		l.ApparelOrderID = orderID
		items = append(items, l)
	}
	if err := r.db.WithContext(ctx).Omit("Apparel").Create(&items).Error; err != nil {
		return nil, translateError(err)
	}
	// 呼び出し側が組み立てた商品はそのまま返す
	for i := range items {
		items[i].Apparel = apparels[i]
	}
	return items, nil
}

func (r *ApparelOrderLineGormRepository) Update(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error) {
	if l.Apparel != nil && l.ApparelID == nil {
		id := l.Apparel.ID
		l.ApparelID = &id
	}
	db := r.db.WithContext(ctx)
	res := db.Model(&model.ApparelOrderLine{}).
		Where("id = ? AND version = ?", l.ID, l.Version).
		Updates(map[string]interface{}{
			"apparel_order_id":   l.ApparelOrderID,
			"apparel_id":         l.ApparelID,
			"order_quantity":     l.OrderQuantity,
			"quantity_allocated": l.QuantityAllocated,
			"status":             l.Status,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         r.db.NowFunc(),
		})
	if res.Error != nil {
		return model.ApparelOrderLine{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ApparelOrderLine{}, missOrConflict(db, &model.ApparelOrderLine{}, l.ID)
	}
	return r.FindByID(ctx, l.ID)
}

func (r *ApparelOrderLineGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ApparelOrderLine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ApparelOrderLineGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Where("apparel_order_id = ?", orderID).Delete(&model.ApparelOrderLine{}).Error
}

func (r *ApparelOrderLineGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ApparelOrderLine{}).Error
}

func resetLine(l model.ApparelOrderLine) model.ApparelOrderLine {
	if l.Apparel != nil && l.ApparelID == nil {
		id := l.Apparel.ID
		l.ApparelID = &id
	}
	l.ID = 0
	l.Version = 0
	l.CreatedAt = time.Time{}
	l.UpdatedAt = time.Time{}
	return l
}
