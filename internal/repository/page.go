package repository

// ページ指定（pageは0始まり）
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// 1ページ分の結果と総件数
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// 中身だけ別の型に詰め替える
func MapPage[T any, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[R]{
		Content:       out,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}
