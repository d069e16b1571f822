package interfaces

import (
	"context"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
// Create is the single numbering authority: it assigns the next numero and
// resolves Cliente/Parceiro names (find-or-create) inside one atomic unit with
// the insert itself. A failed creation leaves no partial writes behind: no
// orphan party rows and no OS without a numero.
//
// Update operations return the zero-value entity (ID == "") when the id does
// not exist; they never invent an error for not-found.

type IServiceOrderRepository interface {
	Create(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OSStatus) (entities.ServiceOrder, error)
	ToggleUrgency(ctx context.Context, id string) (entities.ServiceOrder, error)
}
