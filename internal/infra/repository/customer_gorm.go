package repository

import (
	"context"
	"time"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	var items []model.Customer
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Customer{}, err
	}
	return items, nil
}

func (r *CustomerGormRepository) Insert(ctx context.Context, c model.Customer) (model.Customer, error) {
	c.ID = 0
	c.Version = 0
	c.CreatedAt = time.Time{}
	c.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) (model.Customer, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Customer{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(map[string]interface{}{
			"name":          c.Name,
			"email":         c.Email,
			"phone_number":  c.PhoneNumber,
			"address_line1": c.AddressLine1,
			"address_line2": c.AddressLine2,
			"city":          c.City,
			"state":         c.State,
			"postal_code":   c.PostalCode,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    r.db.NowFunc(),
		})
	if res.Error != nil {
		return model.Customer{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Customer{}, missOrConflict(db, &model.Customer{}, c.ID)
	}
	return r.FindByID(ctx, c.ID)
}

// 注文が残っている顧客は消せない
func (r *CustomerGormRepository) DeleteByID(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	var orders int64
	if err := db.Model(&model.ApparelOrder{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
		return err
	}
	if orders > 0 {
		var n int64
		if err := db.Model(&model.Customer{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrNotFound
		}
		return repo.ErrReferenced
	}

	res := db.Delete(&model.Customer{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) DeleteAll(ctx context.Context) error {
	return translateError(r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Customer{}).Error)
}
