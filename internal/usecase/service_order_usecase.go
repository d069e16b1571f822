package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/infrastructure/metrics"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOSNotFound     = errors.New("service order not found")
	ErrInvalidOSID    = errors.New("invalid service order id")
	ErrInvalidCliente = errors.New("invalid cliente")
	ErrInvalidProjeto = errors.New("invalid projeto")
	ErrInvalidTarefa  = errors.New("invalid tarefa")
	ErrInvalidStatus  = errors.New("invalid status")
)

// CreateServiceOrderInput carries the client-supplied fields of a new OS.
// Cliente and Parceiro are names; the repository resolves them to rows.
type CreateServiceOrderInput struct {
	Cliente         string
	Parceiro        string
	Projeto         string
	Tarefa          string
	Observacoes     string
	TempoTrabalhado string
	Status          string
	IsUrgent        bool
}

// IServiceOrderUseCase exposes the OS board operations:
//   - create card => Create()
//   - drag card between columns => ChangeStatus()
//   - urgency flag toggle => ToggleUrgency()
//   - "duplicar OS" context action => Duplicate()

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, status string) ([]entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, id string, status string) (entities.ServiceOrder, error)
	ToggleUrgency(ctx context.Context, id string) (entities.ServiceOrder, error)
	Duplicate(ctx context.Context, id string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	cliente := strings.TrimSpace(in.Cliente)
	if cliente == "" {
		return entities.ServiceOrder{}, ErrInvalidCliente
	}
	projeto := strings.TrimSpace(in.Projeto)
	if projeto == "" {
		return entities.ServiceOrder{}, ErrInvalidProjeto
	}
	tarefa := strings.TrimSpace(in.Tarefa)
	if tarefa == "" {
		return entities.ServiceOrder{}, ErrInvalidTarefa
	}

	status := entities.OSStatusNaFila
	if s := strings.TrimSpace(in.Status); s != "" {
		status = entities.OSStatus(s)
		if !status.Valid() {
			return entities.ServiceOrder{}, ErrInvalidStatus
		}
	}

	draft := entities.ServiceOrder{
		ID:              uuid.NewString(),
		Cliente:         cliente,
		Parceiro:        strings.TrimSpace(in.Parceiro),
		Projeto:         projeto,
		Tarefa:          tarefa,
		Observacoes:     in.Observacoes,
		TempoTrabalhado: in.TempoTrabalhado,
		Status:          status,
		IsUrgent:        in.IsUrgent,
		DataAbertura:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	metrics.OSCreated.Inc()
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}

	os, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if os.ID == "" {
		return entities.ServiceOrder{}, ErrOSNotFound
	}
	return os, nil
}

// List returns every OS ordered by numero. A non-empty status narrows the
// result to one board column.
func (u *ServiceOrderUseCase) List(ctx context.Context, status string) ([]entities.ServiceOrder, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return u.repo.List(ctx)
	}

	st := entities.OSStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, st)
}

func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, id string, status string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}

	st := entities.OSStatus(strings.TrimSpace(status))
	if !st.Valid() {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOSNotFound
	}
	metrics.OSStatusChanged.WithLabelValues(string(st)).Inc()
	return updated, nil
}

func (u *ServiceOrderUseCase) ToggleUrgency(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}

	updated, err := u.repo.ToggleUrgency(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOSNotFound
	}
	return updated, nil
}

// Duplicate clones the descriptive fields of an existing OS into a brand-new
// record: fresh id, fresh numero, DataAbertura reset to now, status back to
// NA_FILA and DataFinalizacao unset. It reuses the creation path, so the
// numbering authority stays single.
func (u *ServiceOrderUseCase) Duplicate(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}

	original, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if original.ID == "" {
		return entities.ServiceOrder{}, ErrOSNotFound
	}

	draft := entities.ServiceOrder{
		ID:              uuid.NewString(),
		Cliente:         original.Cliente,
		Parceiro:        original.Parceiro,
		Projeto:         original.Projeto,
		Tarefa:          original.Tarefa,
		Observacoes:     original.Observacoes,
		TempoTrabalhado: original.TempoTrabalhado,
		Status:          entities.OSStatusNaFila,
		IsUrgent:        original.IsUrgent,
		DataAbertura:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	metrics.OSDuplicated.Inc()
	return created, nil
}
