package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	mock_interfaces "github.com/rafacrt/studio-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartyUseCase_FindOrCreate(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewPartyUseCase(entities.PartyKindCliente, nil)
		_, err := uc.FindOrCreate(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidPartyName) {
			t.Fatalf("expected ErrInvalidPartyName, got %v", err)
		}
	})

	t.Run("trims name before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(entities.PartyKindCliente, repo)

		repo.EXPECT().FindOrCreateByName(gomock.Any(), "Estudio Azul").Return(entities.Party{ID: "c-1", Nome: "Estudio Azul"}, nil)

		party, err := uc.FindOrCreate(context.Background(), "  Estudio Azul  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if party.ID != "c-1" {
			t.Fatalf("unexpected party: %+v", party)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(entities.PartyKindParceiro, repo)

		repo.EXPECT().FindOrCreateByName(gomock.Any(), "Grafica Norte").Return(entities.Party{}, errors.New("db"))

		_, err := uc.FindOrCreate(context.Background(), "Grafica Norte")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPartyUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartyRepository(ctrl)
	uc := NewPartyUseCase(entities.PartyKindCliente, repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Party{{ID: "c-1"}, {ID: "c-2"}}, nil)

	parties, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(parties))
	}
}

func TestPartyUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPartyUseCase(entities.PartyKindCliente, nil)
		err := uc.Delete(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPartyID) {
			t.Fatalf("expected ErrInvalidPartyID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(entities.PartyKindCliente, repo)

		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(false, nil)

		err := uc.Delete(context.Background(), "c-1")
		if !errors.Is(err, ErrPartyNotFound) {
			t.Fatalf("expected ErrPartyNotFound, got %v", err)
		}
	})

	t.Run("still referenced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(entities.PartyKindCliente, repo)

		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(false, entities.ErrPartyInUse)

		err := uc.Delete(context.Background(), "c-1")
		if !errors.Is(err, ErrPartyInUse) {
			t.Fatalf("expected ErrPartyInUse, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartyRepository(ctrl)
		uc := NewPartyUseCase(entities.PartyKindParceiro, repo)

		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
