package repository

import (
	"context"
	"time"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

type ApparelGormRepository struct {
	db *gorm.DB
}

// DI
func NewApparelGormRepository(db *gorm.DB) *ApparelGormRepository {
	return &ApparelGormRepository{db: db}
}

// IDで商品を取得
func (r *ApparelGormRepository) FindByID(ctx context.Context, id int64) (model.Apparel, error) {
	var a model.Apparel
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return model.Apparel{}, translateError(err)
	}
	return a, nil
}

func (r *ApparelGormRepository) FindAll(ctx context.Context) ([]model.Apparel, error) {
	var items []model.Apparel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Apparel{}, err
	}
	return items, nil
}

func (r *ApparelGormRepository) ListByNameContaining(ctx context.Context, name string, page repo.PageRequest) (repo.Page[model.Apparel], error) {
	return r.listPage(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(apparel_name) LIKE ? ESCAPE '\'`, containsPattern(name))
	})
}

func (r *ApparelGormRepository) ListByNameAndStyleContaining(ctx context.Context, name string, style string, page repo.PageRequest) (repo.Page[model.Apparel], error) {
	return r.listPage(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.
			Where(`LOWER(apparel_name) LIKE ? ESCAPE '\'`, containsPattern(name)).
			Where(`LOWER(COALESCE(apparel_style, '')) LIKE ? ESCAPE '\'`, containsPattern(style))
	})
}

// 件数と1ページ分をそれぞれ別クエリで取る
func (r *ApparelGormRepository) listPage(ctx context.Context, page repo.PageRequest, filter func(*gorm.DB) *gorm.DB) (repo.Page[model.Apparel], error) {
	out := repo.Page[model.Apparel]{Content: []model.Apparel{}, Number: page.Page, Size: page.Size}

	if err := r.db.WithContext(ctx).Model(&model.Apparel{}).Scopes(filter).Count(&out.TotalElements).Error; err != nil {
		return out, err
	}
	if out.TotalElements == 0 {
		return out, nil
	}

	if err := r.db.WithContext(ctx).
		Scopes(filter, orderByID).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&out.Content).Error; err != nil {
		return out, err
	}
	return out, nil
}

// 商品の作成。ID/version/日時はDB側で決める
func (r *ApparelGormRepository) Insert(ctx context.Context, a model.Apparel) (model.Apparel, error) {
	a.ID = 0
	a.Version = 0
	a.CreatedAt = time.Time{}
	a.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.Apparel{}, translateError(err)
	}
	return a, nil
}

// 商品の更新（versionが一致した時だけ）
func (r *ApparelGormRepository) Update(ctx context.Context, a model.Apparel) (model.Apparel, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Apparel{}).
		Where("id = ? AND version = ?", a.ID, a.Version).
		Updates(map[string]interface{}{
			"apparel_name":     a.ApparelName,
			"apparel_style":    a.ApparelStyle,
			"upc":              a.UPC,
			"quantity_on_hand": a.QuantityOnHand,
			"description":      a.Description,
			"price":            a.Price,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       r.db.NowFunc(),
		})
	if res.Error != nil {
		return model.Apparel{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Apparel{}, missOrConflict(db, &model.Apparel{}, a.ID)
	}
	return r.FindByID(ctx, a.ID)
}

// 商品削除。参照していた明細は商品なしになる
func (r *ApparelGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detachApparel(tx.Where("apparel_id = ?", id)); err != nil {
			return err
		}
		res := tx.Delete(&model.Apparel{}, id)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

func (r *ApparelGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detachApparel(tx.Where("apparel_id IS NOT NULL")); err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.Apparel{}).Error
	})
}

// 明細から商品の参照を外す。明細の更新なのでversionも進める
func detachApparel(tx *gorm.DB) error {
	return tx.Model(&model.ApparelOrderLine{}).
		Updates(map[string]interface{}{
			"apparel_id": nil,
			"version":    gorm.Expr("version + 1"),
			"updated_at": tx.NowFunc(),
		}).Error
}
