package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	mock_interfaces "github.com/rafacrt/studio-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_BuildServiceOrderReport(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.BuildServiceOrderReport(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("aggregates statuses and finalized orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewReportUseCase(repo)

		opened := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		finished := opened.Add(30 * time.Hour)
		orders := []entities.ServiceOrder{
			{ID: "a", Numero: "000001", Status: entities.OSStatusNaFila, DataAbertura: opened},
			{ID: "b", Numero: "000002", Status: entities.OSStatusEmProducao, DataAbertura: opened},
			{ID: "c", Numero: "000003", Cliente: "Estudio Azul", Projeto: "Site",
				Status: entities.OSStatusFinalizado, DataAbertura: opened, DataFinalizacao: &finished},
			// Dragged back onto the board after being finished once. It keeps
			// its completion date, so the production-time list still has it.
			{ID: "d", Numero: "000004", Status: entities.OSStatusEmProducao, DataAbertura: opened, DataFinalizacao: &finished},
		}
		repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		report, err := uc.BuildServiceOrderReport(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := report.TotalPorStatus[entities.OSStatusNaFila]; got != 1 {
			t.Fatalf("NA_FILA count = %d, want 1", got)
		}
		if got := report.TotalPorStatus[entities.OSStatusEmProducao]; got != 2 {
			t.Fatalf("EM_PRODUCAO count = %d, want 2", got)
		}
		if got := report.TotalPorStatus[entities.OSStatusFinalizado]; got != 1 {
			t.Fatalf("FINALIZADO count = %d, want 1", got)
		}
		if got := report.TotalPorStatus[entities.OSStatusAguardandoCliente]; got != 0 {
			t.Fatalf("AGUARDANDO_CLIENTE count = %d, want 0", got)
		}

		if len(report.Finalizadas) != 2 {
			t.Fatalf("expected 2 finalized summaries, got %d", len(report.Finalizadas))
		}
		first := report.Finalizadas[0]
		if first.ID != "c" || first.Cliente != "Estudio Azul" {
			t.Fatalf("unexpected summary: %+v", first)
		}
		if first.TempoProducao != 30*time.Hour {
			t.Fatalf("TempoProducao = %s, want 30h", first.TempoProducao)
		}
	})
}
