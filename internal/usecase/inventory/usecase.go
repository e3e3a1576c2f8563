package inventory

import (
	"context"
	"errors"

	titleDomain "library-ops-backend/internal/domain/title"
	"library-ops-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// Usecase exposes the copy-accounting admin operations. The ledger's own
// reserve/release/write-off happen inside its transactions; these two are
// for growing and shrinking the collection.
type Usecase struct {
	uow    uow.UnitOfWork
	titles titleDomain.Repository
}

func NewUsecase(tx uow.UnitOfWork, titles titleDomain.Repository) *Usecase {
	return &Usecase{uow: tx, titles: titles}
}

type TitleDTO struct {
	TitleID         string `json:"title_id"`
	Name            string `json:"name"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	OnLoan          int    `json:"on_loan"`
}

func toDTO(t *titleDomain.Title) *TitleDTO {
	return &TitleDTO{
		TitleID:         t.TitleID,
		Name:            t.Name,
		TotalCopies:     t.TotalCopies,
		AvailableCopies: t.AvailableCopies,
		OnLoan:          t.OnLoan(),
	}
}

func (u *Usecase) Get(ctx context.Context, titleID string) (*TitleDTO, error) {
	t, err := u.titles.GetByTitleID(ctx, titleID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return toDTO(t), nil
}

func (u *Usecase) AddCopies(ctx context.Context, titleID string, n int) (*TitleDTO, error) {
	return u.mutate(ctx, titleID, func(t *titleDomain.Title) error { return t.AddCopies(n) })
}

func (u *Usecase) RemoveCopies(ctx context.Context, titleID string, n int) (*TitleDTO, error) {
	return u.mutate(ctx, titleID, func(t *titleDomain.Title) error { return t.RemoveCopies(n) })
}

// mutate applies op to the locked title row and saves it, as one
// transaction.
func (u *Usecase) mutate(ctx context.Context, titleID string, op func(*titleDomain.Title) error) (*TitleDTO, error) {
	var dto *TitleDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Titles.GetByTitleIDForUpdate(ctx, titleID)
		if err != nil {
			return notFoundOr(err)
		}
		if err := op(t); err != nil {
			return err
		}
		if err := r.Titles.Save(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return titleDomain.ErrNotFound
	}
	return err
}
