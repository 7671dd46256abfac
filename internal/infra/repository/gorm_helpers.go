package repository

import (
	"errors"
	"strings"

	repo "apparelstore/internal/repository"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// 部分一致用のLIKEパターン（小文字化＋ワイルドカードのエスケープ）
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// DBのエラーをrepositoryのエラーに寄せる
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return repo.ErrReferenced
	default:
		return err
	}
}

// 更新件数0のときに「存在しない」か「version違い」かを判定
func missOrConflict(db *gorm.DB, m interface{}, id int64) error {
	var n int64
	if err := db.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return repo.ErrVersionConflict
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}
