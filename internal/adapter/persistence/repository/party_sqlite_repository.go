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

	"github.com/google/uuid"
)

func sqlitePartyTable(kind entities.PartyKind) string {
	if kind == entities.PartyKindParceiro {
		return "parceiros"
	}
	return "clientes"
}

// PartySQLiteRepository persists Cliente/Parceiro rows in SQLite. One
// instance serves one kind; the two kinds live in separate tables with the
// same shape.

type PartySQLiteRepository struct {
	db    *sql.DB
	table string
}

var _ interfaces.IPartyRepository = (*PartySQLiteRepository)(nil)

func NewPartySQLiteRepository(db *sql.DB, kind entities.PartyKind) *PartySQLiteRepository {
	return &PartySQLiteRepository{db: db, table: sqlitePartyTable(kind)}
}

func (r *PartySQLiteRepository) FindOrCreateByName(ctx context.Context, name string) (entities.Party, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Party{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	party, err := findOrCreatePartyTx(ctx, tx, r.table, name)
	if err != nil {
		return entities.Party{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.Party{}, fmt.Errorf("failed to commit: %w", err)
	}
	return party, nil
}

func (r *PartySQLiteRepository) GetByID(ctx context.Context, id string) (entities.Party, error) {
	var p entities.Party
	var criadoEm string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, criado_em FROM `+r.table+` WHERE id = ?`, id,
	).Scan(&p.ID, &p.Nome, &criadoEm)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Party{}, nil
	}
	if err != nil {
		return entities.Party{}, fmt.Errorf("failed to get party: %w", err)
	}
	p.CriadoEm = parseTime(criadoEm)
	return p, nil
}

func (r *PartySQLiteRepository) List(ctx context.Context) ([]entities.Party, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, criado_em FROM `+r.table+` ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer rows.Close()

	var out []entities.Party
	for rows.Next() {
		var p entities.Party
		var criadoEm string
		if err := rows.Scan(&p.ID, &p.Nome, &criadoEm); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		p.CriadoEm = parseTime(criadoEm)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes the row. The foreign keys from ordens_servico protect rows
// still referenced by an OS: SQLite rejects the delete and we surface
// entities.ErrPartyInUse instead.
func (r *PartySQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, entities.ErrPartyInUse
		}
		return false, fmt.Errorf("failed to delete party: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// findOrCreatePartyTx resolves a name to a row inside the caller's
// transaction. The UNIQUE(nome) constraint plus ON CONFLICT DO NOTHING makes
// the operation idempotent: two racing callers converge on the same row.
func findOrCreatePartyTx(ctx context.Context, tx *sql.Tx, table, name string) (entities.Party, error) {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO `+table+` (id, nome, criado_em) VALUES (?, ?, ?) ON CONFLICT(nome) DO NOTHING`,
		uuid.NewString(), name, formatTime(time.Now()),
	); err != nil {
		return entities.Party{}, fmt.Errorf("failed to upsert party: %w", err)
	}

	var p entities.Party
	var criadoEm string
	if err := tx.QueryRowContext(ctx,
		`SELECT id, nome, criado_em FROM `+table+` WHERE nome = ?`, name,
	).Scan(&p.ID, &p.Nome, &criadoEm); err != nil {
		return entities.Party{}, fmt.Errorf("failed to read back party: %w", err)
	}
	p.CriadoEm = parseTime(criadoEm)
	return p, nil
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
