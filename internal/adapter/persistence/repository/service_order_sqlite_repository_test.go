package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/infrastructure/database"
	"github.com/rafacrt/studio-sub000/internal/usecase"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *ServiceOrderSQLiteRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewServiceOrderSQLiteRepository(db)
}

func newDraft(cliente string) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:           uuid.NewString(),
		Cliente:      cliente,
		Projeto:      "Site",
		Tarefa:       "Landing page",
		Status:       entities.OSStatusNaFila,
		DataAbertura: time.Now().UTC(),
	}
}

func TestServiceOrderSQLiteRepository_NumeroSequence(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Numero != "000001" {
		t.Fatalf("first numero = %q, want 000001", first.Numero)
	}

	second, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.Numero != "000002" {
		t.Fatalf("second numero = %q, want 000002", second.Numero)
	}
}

func TestServiceOrderSQLiteRepository_NumeroUniqueUnderConcurrency(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	const workers = 4
	const perWorker = 5

	var wg sync.WaitGroup
	results := make(chan string, workers*perWorker)
	errs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				created, err := repo.Create(ctx, newDraft(fmt.Sprintf("Cliente %d", worker)))
				if err != nil {
					errs <- err
					return
				}
				results <- created.Numero
			}
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	seen := make(map[string]bool, workers*perWorker)
	for numero := range results {
		if numero == "" {
			t.Fatalf("order created without numero")
		}
		if seen[numero] {
			t.Fatalf("duplicate numero %q", numero)
		}
		seen[numero] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d numeros, got %d", workers*perWorker, len(seen))
	}
}

func TestServiceOrderSQLiteRepository_CreateResolvesParties(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	draft := newDraft("Estudio Azul")
	draft.Parceiro = "Grafica Norte"
	first, err := repo.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ClienteID == "" || first.ParceiroID == "" {
		t.Fatalf("expected resolved party ids: %+v", first)
	}

	// Same names on a second OS resolve to the same rows.
	draft = newDraft("Estudio Azul")
	draft.Parceiro = "Grafica Norte"
	second, err := repo.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ClienteID != first.ClienteID || second.ParceiroID != first.ParceiroID {
		t.Fatalf("expected reused parties, got %+v vs %+v", second, first)
	}

	// No parceiro stays empty.
	third, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ParceiroID != "" || third.Parceiro != "" {
		t.Fatalf("expected no parceiro: %+v", third)
	}
}

func TestServiceOrderSQLiteRepository_CreateRollsBackPartyRows(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Reusing the primary key forces the insert to fail after the cliente row
	// for the new name was already written inside the transaction.
	draft := newDraft("Cliente Fantasma")
	draft.ID = first.ID
	if _, err := repo.Create(ctx, draft); err == nil {
		t.Fatalf("expected create to fail on duplicate id")
	}

	clientes := NewPartySQLiteRepository(repo.db, entities.PartyKindCliente)
	parties, err := clientes.List(ctx)
	if err != nil {
		t.Fatalf("list clientes: %v", err)
	}
	for _, p := range parties {
		if p.Nome == "Cliente Fantasma" {
			t.Fatalf("party row survived a rolled-back creation")
		}
	}

	// The failed attempt must not burn a numero either.
	next, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.Numero != "000002" {
		t.Fatalf("numero after rollback = %q, want 000002", next.Numero)
	}
}

func TestServiceOrderSQLiteRepository_UpdateStatusFinalization(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	finalized, err := repo.UpdateStatus(ctx, created.ID, entities.OSStatusFinalizado)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if finalized.Status != entities.OSStatusFinalizado {
		t.Fatalf("status = %q, want FINALIZADO", finalized.Status)
	}
	if finalized.DataFinalizacao == nil {
		t.Fatalf("expected data_finalizacao to be stamped")
	}
	if finalized.DataFinalizacao.Before(finalized.DataAbertura) {
		t.Fatalf("data_finalizacao %v before data_abertura %v", finalized.DataFinalizacao, finalized.DataAbertura)
	}
	stamp := *finalized.DataFinalizacao

	// Dragging the card back out keeps the first completion date.
	reopened, err := repo.UpdateStatus(ctx, created.ID, entities.OSStatusEmProducao)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if reopened.Status != entities.OSStatusEmProducao {
		t.Fatalf("status = %q, want EM_PRODUCAO", reopened.Status)
	}
	if reopened.DataFinalizacao == nil || !reopened.DataFinalizacao.Equal(stamp) {
		t.Fatalf("data_finalizacao changed on reopen: %v", reopened.DataFinalizacao)
	}

	// Finishing again does not move the stamp.
	again, err := repo.UpdateStatus(ctx, created.ID, entities.OSStatusFinalizado)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if again.DataFinalizacao == nil || !again.DataFinalizacao.Equal(stamp) {
		t.Fatalf("data_finalizacao changed on second finalization: %v", again.DataFinalizacao)
	}
}

func TestServiceOrderSQLiteRepository_UpdateStatusMissing(t *testing.T) {
	repo := openTestDB(t)

	os, err := repo.UpdateStatus(context.Background(), "missing", entities.OSStatusNaFila)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.ID != "" {
		t.Fatalf("expected zero value for missing id, got %+v", os)
	}
}

func TestServiceOrderSQLiteRepository_ToggleUrgency(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsUrgent {
		t.Fatalf("expected non-urgent draft")
	}

	on, err := repo.ToggleUrgency(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !on.IsUrgent {
		t.Fatalf("expected urgent after first toggle")
	}

	off, err := repo.ToggleUrgency(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if off.IsUrgent {
		t.Fatalf("expected original flag after double toggle")
	}
}

func TestServiceOrderSQLiteRepository_ListOrdering(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, newDraft("Estudio Azul")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].Numero >= orders[i].Numero {
			t.Fatalf("orders not sorted by numero: %q then %q", orders[i-1].Numero, orders[i].Numero)
		}
	}
}

func TestServiceOrderSQLiteRepository_ListByStatus(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, newDraft("Estudio Azul"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, newDraft("Estudio Azul")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, a.ID, entities.OSStatusEmProducao); err != nil {
		t.Fatalf("update status: %v", err)
	}

	inProduction, err := repo.ListByStatus(ctx, entities.OSStatusEmProducao)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(inProduction) != 1 || inProduction[0].ID != a.ID {
		t.Fatalf("unexpected filter result: %+v", inProduction)
	}
}

func TestServiceOrderSQLiteRepository_GetByIDMissing(t *testing.T) {
	repo := openTestDB(t)

	os, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.ID != "" {
		t.Fatalf("expected zero value, got %+v", os)
	}
}

// Duplication through the use case against the real store: the copy gets its
// own row, and later edits to the copy leave the original untouched.
func TestServiceOrderDuplication_Independence(t *testing.T) {
	repo := openTestDB(t)
	uc := usecase.NewServiceOrderUseCase(repo)
	ctx := context.Background()

	original, err := uc.Create(ctx, usecase.CreateServiceOrderInput{
		Cliente:  "Estudio Azul",
		Parceiro: "Grafica Norte",
		Projeto:  "Site",
		Tarefa:   "Landing page",
		IsUrgent: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	dup, err := uc.Duplicate(ctx, original.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == original.ID || dup.Numero == original.Numero {
		t.Fatalf("copy shares identity with original: %+v", dup)
	}
	if dup.Cliente != original.Cliente || dup.Parceiro != original.Parceiro || !dup.IsUrgent {
		t.Fatalf("descriptive fields not copied: %+v", dup)
	}
	if dup.Status != entities.OSStatusNaFila || dup.DataFinalizacao != nil {
		t.Fatalf("copy lifecycle not reset: %+v", dup)
	}

	if _, err := uc.ChangeStatus(ctx, dup.ID, "FINALIZADO"); err != nil {
		t.Fatalf("change status: %v", err)
	}

	kept, err := uc.GetByID(ctx, original.ID)
	if err != nil {
		t.Fatalf("get original: %v", err)
	}
	if kept.Status != original.Status || kept.DataFinalizacao != nil {
		t.Fatalf("original mutated by edit on copy: %+v", kept)
	}
}
