package mapper

import (
	"time"

	"apparelstore/internal/dto"
	repo "apparelstore/internal/repository"
)

func ptr[T any](v T) *T {
	return &v
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// 未保存（ゼロ値）の日時はnullで出す
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func base(id, version int64, created, updated time.Time) dto.Base {
	return dto.Base{
		ID:          ptr(id),
		Version:     ptr(version),
		CreatedDate: timePtr(created),
		UpdateDate:  timePtr(updated),
	}
}

// repositoryのページをJSONの包みに変換
func ToPageDto[T any](p repo.Page[T]) dto.PageDto[T] {
	content := p.Content
	if content == nil {
		content = []T{}
	}
	totalPages := p.TotalPages()
	return dto.PageDto[T]{
		Content:          content,
		Number:           p.Number,
		Size:             p.Size,
		TotalElements:    p.TotalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            p.Number == 0,
		Last:             p.Number+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
