package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"
)

// maxNumeroAttempts bounds the retry loop around the numbering transaction.
// With the pool capped at one connection the MAX()+1 read and the insert are
// already serialized; the UNIQUE(numero) constraint plus this retry is the
// backstop if the deployment ever relaxes that.
const maxNumeroAttempts = 5

const serviceOrderSelect = `
SELECT os.id, os.numero,
       os.cliente_id, c.nome,
       COALESCE(os.parceiro_id, ''), COALESCE(p.nome, ''),
       os.projeto, os.tarefa, os.observacoes, os.tempo_trabalhado,
       os.status, os.is_urgent,
       os.data_abertura, COALESCE(os.data_finalizacao, '')
FROM ordens_servico os
JOIN clientes c ON c.id = os.cliente_id
LEFT JOIN parceiros p ON p.id = os.parceiro_id`

// ServiceOrderSQLiteRepository persists ServiceOrder rows in SQLite.
//
// It is the numbering authority for this backend: Create resolves party
// names, computes MAX(CAST(numero AS INTEGER))+1 and inserts the row inside
// a single transaction, so a failed creation rolls back any party rows it
// created and never leaves an OS without a numero.

type ServiceOrderSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderSQLiteRepository)(nil)

func NewServiceOrderSQLiteRepository(db *sql.DB) *ServiceOrderSQLiteRepository {
	return &ServiceOrderSQLiteRepository{db: db}
}

func (r *ServiceOrderSQLiteRepository) Create(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error) {
	var lastErr error
	for attempt := 0; attempt < maxNumeroAttempts; attempt++ {
		created, err := r.createOnce(ctx, os)
		if err == nil {
			return created, nil
		}
		if !isNumeroConflict(err) {
			return entities.ServiceOrder{}, err
		}
		lastErr = err
	}
	return entities.ServiceOrder{}, fmt.Errorf("numero allocation kept conflicting after %d attempts: %w", maxNumeroAttempts, lastErr)
}

func (r *ServiceOrderSQLiteRepository) createOnce(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cliente, err := findOrCreatePartyTx(ctx, tx, sqlitePartyTable(entities.PartyKindCliente), os.Cliente)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to resolve cliente %q: %w", os.Cliente, err)
	}
	os.ClienteID = cliente.ID
	os.Cliente = cliente.Nome

	var parceiroID sql.NullString
	if os.Parceiro != "" {
		parceiro, err := findOrCreatePartyTx(ctx, tx, sqlitePartyTable(entities.PartyKindParceiro), os.Parceiro)
		if err != nil {
			return entities.ServiceOrder{}, fmt.Errorf("failed to resolve parceiro %q: %w", os.Parceiro, err)
		}
		os.ParceiroID = parceiro.ID
		os.Parceiro = parceiro.Nome
		parceiroID = sql.NullString{String: parceiro.ID, Valid: true}
	}

	var next int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(CAST(numero AS INTEGER)), 0) + 1 FROM ordens_servico`,
	).Scan(&next); err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to compute next numero: %w", err)
	}
	os.Numero = formatNumero(next)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ordens_servico
			(id, numero, cliente_id, parceiro_id, projeto, tarefa, observacoes,
			 tempo_trabalhado, status, is_urgent, data_abertura, data_finalizacao)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		os.ID, os.Numero, os.ClienteID, parceiroID, os.Projeto, os.Tarefa,
		os.Observacoes, os.TempoTrabalhado, string(os.Status), boolToInt(os.IsUrgent),
		formatTime(os.DataAbertura),
	); err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to insert service order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to commit creation: %w", err)
	}

	os.DataFinalizacao = nil
	return os, nil
}

func (r *ServiceOrderSQLiteRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	row := r.db.QueryRowContext(ctx, serviceOrderSelect+` WHERE os.id = ?`, id)
	os, err := scanServiceOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	return os, err
}

func (r *ServiceOrderSQLiteRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.list(ctx, serviceOrderSelect+` ORDER BY CAST(os.numero AS INTEGER)`)
}

func (r *ServiceOrderSQLiteRepository) ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error) {
	return r.list(ctx, serviceOrderSelect+` WHERE os.status = ? ORDER BY CAST(os.numero AS INTEGER)`, string(status))
}

func (r *ServiceOrderSQLiteRepository) list(ctx context.Context, query string, args ...any) ([]entities.ServiceOrder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	defer rows.Close()

	var out []entities.ServiceOrder
	for rows.Next() {
		os, err := scanServiceOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, os)
	}
	return out, rows.Err()
}

// UpdateStatus is the unconstrained status setter. The CASE expression keeps
// the finalization stamp set-once: the first entry into FINALIZADO writes
// data_finalizacao, every other transition leaves it untouched, even when the
// card moves back out of FINALIZADO.
func (r *ServiceOrderSQLiteRepository) UpdateStatus(ctx context.Context, id string, status entities.OSStatus) (entities.ServiceOrder, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ordens_servico
		SET status = ?,
		    data_finalizacao = CASE
		        WHEN ? = ? AND data_finalizacao IS NULL THEN ?
		        ELSE data_finalizacao
		    END
		WHERE id = ?`,
		string(status), string(status), string(entities.OSStatusFinalizado),
		formatTime(time.Now()), id,
	)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to update status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return entities.ServiceOrder{}, err
	} else if n == 0 {
		return entities.ServiceOrder{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ServiceOrderSQLiteRepository) ToggleUrgency(ctx context.Context, id string) (entities.ServiceOrder, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ordens_servico
		SET is_urgent = CASE WHEN is_urgent = 0 THEN 1 ELSE 0 END
		WHERE id = ?`, id)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("failed to toggle urgency: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return entities.ServiceOrder{}, err
	} else if n == 0 {
		return entities.ServiceOrder{}, nil
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceOrder(row rowScanner) (entities.ServiceOrder, error) {
	var os entities.ServiceOrder
	var isUrgent int
	var abertura, finalizacao string
	if err := row.Scan(
		&os.ID, &os.Numero,
		&os.ClienteID, &os.Cliente,
		&os.ParceiroID, &os.Parceiro,
		&os.Projeto, &os.Tarefa, &os.Observacoes, &os.TempoTrabalhado,
		&os.Status, &isUrgent,
		&abertura, &finalizacao,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ServiceOrder{}, err
		}
		return entities.ServiceOrder{}, fmt.Errorf("failed to scan service order: %w", err)
	}
	os.IsUrgent = isUrgent != 0
	os.DataAbertura = parseTime(abertura)
	os.DataFinalizacao = parseTimePtr(finalizacao)
	return os, nil
}

func isNumeroConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: ordens_servico.numero")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
