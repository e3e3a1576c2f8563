package inventory

import (
	"context"
	"errors"
	"testing"

	titleDomain "library-ops-backend/internal/domain/title"
	"library-ops-backend/internal/domain/uow"
	"library-ops-backend/internal/testutil/titlemock"
	"library-ops-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const titleID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newUsecase(t *titleDomain.Title) (*Usecase, *int) {
	saves := 0
	titles := &titlemock.Repo{
		GetByTitleIDFn: func(_ context.Context, id string) (*titleDomain.Title, error) {
			if t == nil || t.TitleID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return t, nil
		},
		GetByTitleIDForUpdateFn: func(_ context.Context, id string) (*titleDomain.Title, error) {
			if t == nil || t.TitleID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return t, nil
		},
		SaveFn: func(_ context.Context, _ *titleDomain.Title) error {
			saves++
			return nil
		},
	}
	return NewUsecase(uowmock.Passthrough(uow.Repos{Titles: titles}), titles), &saves
}

func TestGet(t *testing.T) {
	title := &titleDomain.Title{TitleID: titleID, Name: "Dune", TotalCopies: 3, AvailableCopies: 1}
	uc, _ := newUsecase(title)

	dto, err := uc.Get(context.Background(), titleID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.Name != "Dune" || dto.TotalCopies != 3 || dto.AvailableCopies != 1 {
		t.Fatalf("dto = %+v", dto)
	}
	if dto.OnLoan != 2 {
		t.Fatalf("on_loan = %d, want 2", dto.OnLoan)
	}

	_, err = uc.Get(context.Background(), "ffffffffffffffffffffffffffffffff")
	if !errors.Is(err, titleDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddCopies(t *testing.T) {
	title := &titleDomain.Title{TitleID: titleID, TotalCopies: 2, AvailableCopies: 1}
	uc, saves := newUsecase(title)

	dto, err := uc.AddCopies(context.Background(), titleID, 3)
	if err != nil {
		t.Fatalf("AddCopies err: %v", err)
	}
	if dto.TotalCopies != 5 || dto.AvailableCopies != 4 {
		t.Fatalf("dto = %+v", dto)
	}
	if *saves != 1 {
		t.Fatalf("saves = %d, want 1", *saves)
	}

	if _, err := uc.AddCopies(context.Background(), titleID, 0); !errors.Is(err, titleDomain.ErrValidation) {
		t.Fatalf("n=0: expected ErrValidation, got %v", err)
	}
}

func TestRemoveCopies(t *testing.T) {
	t.Run("within the idle stock", func(t *testing.T) {
		title := &titleDomain.Title{TitleID: titleID, TotalCopies: 5, AvailableCopies: 3}
		uc, saves := newUsecase(title)

		dto, err := uc.RemoveCopies(context.Background(), titleID, 2)
		if err != nil {
			t.Fatalf("RemoveCopies err: %v", err)
		}
		if dto.TotalCopies != 3 || dto.AvailableCopies != 1 {
			t.Fatalf("dto = %+v", dto)
		}
		if *saves != 1 {
			t.Fatalf("saves = %d, want 1", *saves)
		}
	})

	t.Run("cannot cut below copies on loan", func(t *testing.T) {
		title := &titleDomain.Title{TitleID: titleID, TotalCopies: 5, AvailableCopies: 1}
		uc, saves := newUsecase(title)

		_, err := uc.RemoveCopies(context.Background(), titleID, 2)
		if !errors.Is(err, titleDomain.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if *saves != 0 {
			t.Fatalf("failed remove must not save, saves = %d", *saves)
		}
	})

	t.Run("unknown title", func(t *testing.T) {
		uc, _ := newUsecase(nil)
		_, err := uc.RemoveCopies(context.Background(), titleID, 1)
		if !errors.Is(err, titleDomain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
