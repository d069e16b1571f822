package interfaces

import (
	"context"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
)

// IPartyRepository abstracts persistence for Cliente/Parceiro rows. One
// implementation instance serves exactly one PartyKind.
//
// FindOrCreateByName must be idempotent under concurrent calls with the same
// name: implementations enforce a uniqueness guarantee on the name and resolve
// conflicts to the existing row instead of creating a duplicate.
//
// Delete returns (false, nil) for an unknown id and entities.ErrPartyInUse
// when the row is still referenced by a ServiceOrder.

type IPartyRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (entities.Party, error)
	GetByID(ctx context.Context, id string) (entities.Party, error)
	List(ctx context.Context) ([]entities.Party, error)
	Delete(ctx context.Context, id string) (bool, error)
}
