package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"
	"apparelstore/internal/mapper"
	repo "apparelstore/internal/repository"
)

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 2000
)

type ApparelUsecase struct {
	apparels repo.ApparelRepository
	tx       repo.TransactionManager
}

// DI
func NewApparelUsecase(apparels repo.ApparelRepository, tx repo.TransactionManager) *ApparelUsecase {
	return &ApparelUsecase{apparels: apparels, tx: tx}
}

// GET /apparels の入力。名前/スタイルはnilか空白なら指定なし
type ListApparelsInput struct {
	ApparelName  *string
	ApparelStyle *string
	Page         int
	Size         int
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func apparelNotFound(id int64) string {
	return fmt.Sprintf("Apparel not found with id: %d", id)
}

func (u *ApparelUsecase) List(ctx context.Context, in ListApparelsInput) (dto.PageDto[dto.ApparelDto], error) {
	fields := map[string]string{}
	if in.Page < 0 {
		fields["page"] = "Page index must not be less than zero"
	}
	switch {
	case in.Size < 1:
		fields["size"] = "Page size must not be less than one"
	case in.Size > MaxSize:
		fields["size"] = fmt.Sprintf("Page size must not be greater than %d", MaxSize)
	case in.Page > math.MaxInt/in.Size:
		// page*sizeが溢れる
		fields["page"] = "Page index is too large"
	}
	if len(fields) > 0 {
		return dto.PageDto[dto.ApparelDto]{}, ValidationError(fields)
	}

	page := repo.PageRequest{Page: in.Page, Size: in.Size}
	var (
		res repo.Page[model.Apparel]
		err error
	)
	// 名前だけの時以外は名前+スタイルの検索に寄せる（空文字は全件一致）
	switch {
	case hasText(in.ApparelName) && hasText(in.ApparelStyle):
		res, err = u.apparels.ListByNameAndStyleContaining(ctx, *in.ApparelName, *in.ApparelStyle, page)
	case hasText(in.ApparelName):
		res, err = u.apparels.ListByNameContaining(ctx, *in.ApparelName, page)
	case hasText(in.ApparelStyle):
		res, err = u.apparels.ListByNameAndStyleContaining(ctx, "", *in.ApparelStyle, page)
	default:
		res, err = u.apparels.ListByNameAndStyleContaining(ctx, "", "", page)
	}
	if err != nil {
		return dto.PageDto[dto.ApparelDto]{}, err
	}
	return mapper.ToPageDto(repo.MapPage(res, mapper.ApparelToDto)), nil
}

// 見つからない時はfound=false（エラーにはしない）
func (u *ApparelUsecase) GetByID(ctx context.Context, id int64) (dto.ApparelDto, bool, error) {
	a, err := u.apparels.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return dto.ApparelDto{}, false, nil
	}
	if err != nil {
		return dto.ApparelDto{}, false, err
	}
	return mapper.ApparelToDto(a), true, nil
}

// idが無ければ新規作成、あれば全項目更新
func (u *ApparelUsecase) Save(ctx context.Context, d dto.ApparelDto) (dto.ApparelDto, error) {
	var out dto.ApparelDto
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if d.ID == nil {
			saved, err := r.Apparels().Insert(ctx, mapper.ApparelDtoToApparel(d))
			if err != nil {
				return fromRepoError(err, "")
			}
			out = mapper.ApparelToDto(saved)
			return nil
		}

		current, err := r.Apparels().FindByID(ctx, *d.ID)
		if err != nil {
			return fromRepoError(err, apparelNotFound(*d.ID))
		}
		mapper.UpdateApparelFromDto(d, &current)
		if d.Version != nil {
			current.Version = *d.Version
		}
		saved, err := r.Apparels().Update(ctx, current)
		if err != nil {
			return fromRepoError(err, apparelNotFound(*d.ID))
		}
		out = mapper.ApparelToDto(saved)
		return nil
	})
	return out, err
}

// nilでない項目だけ更新。無ければfound=false
func (u *ApparelUsecase) Patch(ctx context.Context, id int64, p dto.ApparelPatchDto) (dto.ApparelDto, bool, error) {
	var (
		out   dto.ApparelDto
		found bool
	)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Apparels().FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		mapper.UpdateApparelFromPatchDto(p, &current)
		if p.Version != nil {
			current.Version = *p.Version
		}
		saved, err := r.Apparels().Update(ctx, current)
		if err != nil {
			return fromRepoError(err, apparelNotFound(id))
		}
		out, found = mapper.ApparelToDto(saved), true
		return nil
	})
	return out, found, err
}

func (u *ApparelUsecase) DeleteByID(ctx context.Context, id int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return fromRepoError(r.Apparels().DeleteByID(ctx, id), apparelNotFound(id))
	})
}
