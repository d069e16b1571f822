package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"
)

var (
	ErrPartyNotFound    = errors.New("party not found")
	ErrInvalidPartyID   = errors.New("invalid party id")
	ErrInvalidPartyName = errors.New("invalid party name")
	ErrPartyInUse       = entities.ErrPartyInUse
)

// IPartyUseCase exposes the Cliente/Parceiro management screens. The same
// implementation serves both kinds; each HTTP route group gets its own
// instance bound to the matching repository.

type IPartyUseCase interface {
	FindOrCreate(ctx context.Context, name string) (entities.Party, error)
	List(ctx context.Context) ([]entities.Party, error)
	Delete(ctx context.Context, id string) error
}

type PartyUseCase struct {
	kind entities.PartyKind
	repo interfaces.IPartyRepository
}

var _ IPartyUseCase = (*PartyUseCase)(nil)

func NewPartyUseCase(kind entities.PartyKind, repo interfaces.IPartyRepository) *PartyUseCase {
	return &PartyUseCase{kind: kind, repo: repo}
}

func (u *PartyUseCase) FindOrCreate(ctx context.Context, name string) (entities.Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Party{}, ErrInvalidPartyName
	}
	return u.repo.FindOrCreateByName(ctx, name)
}

func (u *PartyUseCase) List(ctx context.Context) ([]entities.Party, error) {
	return u.repo.List(ctx)
}

// Delete removes a Cliente/Parceiro row. Rows still referenced by an OS are
// protected: the repository reports entities.ErrPartyInUse and nothing is
// removed.
func (u *PartyUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartyID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPartyNotFound
	}
	return nil
}
