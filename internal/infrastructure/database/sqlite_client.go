package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const defaultSQLitePath = "data/studio.db"

// Schema for the SQLite backend.
//
// Invariants encoded here rather than in application code:
//   - numero is UNIQUE: the numbering authority's last line of defense.
//   - cliente/parceiro references are real foreign keys; with foreign_keys=ON
//     a DELETE on a referenced row fails, which the party repository maps to
//     ErrPartyInUse.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS clientes (
	id        TEXT PRIMARY KEY,
	nome      TEXT NOT NULL UNIQUE,
	criado_em TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS parceiros (
	id        TEXT PRIMARY KEY,
	nome      TEXT NOT NULL UNIQUE,
	criado_em TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ordens_servico (
	id               TEXT PRIMARY KEY,
	numero           TEXT NOT NULL UNIQUE,
	cliente_id       TEXT NOT NULL REFERENCES clientes(id),
	parceiro_id      TEXT REFERENCES parceiros(id),
	projeto          TEXT NOT NULL,
	tarefa           TEXT NOT NULL,
	observacoes      TEXT NOT NULL DEFAULT '',
	tempo_trabalhado TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	is_urgent        INTEGER NOT NULL DEFAULT 0,
	data_abertura    TEXT NOT NULL,
	data_finalizacao TEXT
);

CREATE INDEX IF NOT EXISTS idx_os_status ON ordens_servico(status);
`

// ConnectSQLite opens (or creates) the SQLite database and applies the schema.
// Fatal on failure, mirroring the DynamoDB client: the service cannot run
// without its store.
func ConnectSQLite() *sql.DB {
	db, err := OpenSQLite(getenvDefault("SQLITE_PATH", defaultSQLitePath))
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}
	return db
}

// OpenSQLite opens a SQLite database at the given path and bootstraps the
// schema. The pool is capped at a single connection: SQLite works best with
// one writer, and it serializes the numero read-then-insert sequence.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
