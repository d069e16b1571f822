package response

import (
	"testing"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	opened := time.Now().UTC()
	finished := opened.Add(2 * time.Hour)
	os := entities.ServiceOrder{
		ID:              "os-1",
		Numero:          "000042",
		Cliente:         "Estudio Azul",
		Parceiro:        "Grafica Norte",
		Projeto:         "Site",
		Tarefa:          "Landing page",
		Observacoes:     "aprovado por email",
		TempoTrabalhado: "3h",
		Status:          entities.OSStatusFinalizado,
		IsUrgent:        true,
		DataAbertura:    opened,
		DataFinalizacao: &finished,
	}

	res := FromServiceOrder(os)
	if res.ID != "os-1" || res.Numero != "000042" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Cliente != "Estudio Azul" || res.Parceiro != "Grafica Norte" {
		t.Fatalf("unexpected parties: %+v", res)
	}
	if res.Status != "FINALIZADO" || !res.IsUrgent {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if !res.DataAbertura.Equal(opened) || res.DataFinalizacao == nil || !res.DataFinalizacao.Equal(finished) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromServiceOrders(t *testing.T) {
	out := FromServiceOrders(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	out = FromServiceOrders([]entities.ServiceOrder{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}
