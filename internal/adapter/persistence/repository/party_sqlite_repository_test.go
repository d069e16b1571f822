package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/infrastructure/database"
)

func openPartyTestDB(t *testing.T) (*PartySQLiteRepository, *ServiceOrderSQLiteRepository) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPartySQLiteRepository(db, entities.PartyKindCliente), NewServiceOrderSQLiteRepository(db)
}

func TestPartySQLiteRepository_FindOrCreateByName(t *testing.T) {
	repo, _ := openPartyTestDB(t)
	ctx := context.Background()

	first, err := repo.FindOrCreateByName(ctx, "Estudio Azul")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if first.ID == "" || first.Nome != "Estudio Azul" || first.CriadoEm.IsZero() {
		t.Fatalf("unexpected party: %+v", first)
	}

	second, err := repo.FindOrCreateByName(ctx, "Estudio Azul")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected idempotent resolution, got %q vs %q", second.ID, first.ID)
	}

	other, err := repo.FindOrCreateByName(ctx, "Outro Cliente")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if other.ID == first.ID {
		t.Fatalf("distinct names must not share a row")
	}
}

func TestPartySQLiteRepository_KindsAreSeparate(t *testing.T) {
	_, orders := openPartyTestDB(t)
	clientes := NewPartySQLiteRepository(orders.db, entities.PartyKindCliente)
	parceiros := NewPartySQLiteRepository(orders.db, entities.PartyKindParceiro)
	ctx := context.Background()

	if _, err := clientes.FindOrCreateByName(ctx, "Mesma Empresa"); err != nil {
		t.Fatalf("find or create cliente: %v", err)
	}

	listed, err := parceiros.List(ctx)
	if err != nil {
		t.Fatalf("list parceiros: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("cliente leaked into parceiros table: %+v", listed)
	}
}

func TestPartySQLiteRepository_List(t *testing.T) {
	repo, _ := openPartyTestDB(t)
	ctx := context.Background()

	for _, nome := range []string{"Zebra Design", "Atelier Sul"} {
		if _, err := repo.FindOrCreateByName(ctx, nome); err != nil {
			t.Fatalf("find or create: %v", err)
		}
	}

	parties, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(parties))
	}
	if parties[0].Nome != "Atelier Sul" || parties[1].Nome != "Zebra Design" {
		t.Fatalf("expected name ordering, got %+v", parties)
	}
}

func TestPartySQLiteRepository_Delete(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		repo, _ := openPartyTestDB(t)

		deleted, err := repo.Delete(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted {
			t.Fatalf("expected no deletion for missing id")
		}
	})

	t.Run("unreferenced row", func(t *testing.T) {
		repo, _ := openPartyTestDB(t)
		ctx := context.Background()

		party, err := repo.FindOrCreateByName(ctx, "Estudio Azul")
		if err != nil {
			t.Fatalf("find or create: %v", err)
		}

		deleted, err := repo.Delete(ctx, party.ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !deleted {
			t.Fatalf("expected deletion")
		}

		got, err := repo.GetByID(ctx, party.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("row survived deletion: %+v", got)
		}
	})

	t.Run("referenced by an OS", func(t *testing.T) {
		repo, orders := openPartyTestDB(t)
		ctx := context.Background()

		created, err := orders.Create(ctx, newDraft("Estudio Azul"))
		if err != nil {
			t.Fatalf("create order: %v", err)
		}

		_, err = repo.Delete(ctx, created.ClienteID)
		if !errors.Is(err, entities.ErrPartyInUse) {
			t.Fatalf("expected ErrPartyInUse, got %v", err)
		}

		// The row is still there.
		got, err := repo.GetByID(ctx, created.ClienteID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ClienteID {
			t.Fatalf("referenced row disappeared")
		}
	})
}
