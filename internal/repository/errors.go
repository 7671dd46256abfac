package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 読んだ時のversionと保存時のversionが違う（楽観ロック失敗）
	ErrVersionConflict = errors.New("version conflict")

	// 他の行から参照されていて削除できない
	ErrReferenced = errors.New("referenced by other rows")
)
