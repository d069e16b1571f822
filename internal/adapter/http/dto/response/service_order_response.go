package response

import (
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID              string     `json:"id"`
	Numero          string     `json:"numero"`
	Cliente         string     `json:"cliente"`
	Parceiro        string     `json:"parceiro,omitempty"`
	Projeto         string     `json:"projeto"`
	Tarefa          string     `json:"tarefa"`
	Observacoes     string     `json:"observacoes"`
	TempoTrabalhado string     `json:"tempo_trabalhado,omitempty"`
	Status          string     `json:"status"`
	IsUrgent        bool       `json:"is_urgent"`
	DataAbertura    time.Time  `json:"data_abertura"`
	DataFinalizacao *time.Time `json:"data_finalizacao,omitempty"`
}

func FromServiceOrder(os entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:              os.ID,
		Numero:          os.Numero,
		Cliente:         os.Cliente,
		Parceiro:        os.Parceiro,
		Projeto:         os.Projeto,
		Tarefa:          os.Tarefa,
		Observacoes:     os.Observacoes,
		TempoTrabalhado: os.TempoTrabalhado,
		Status:          string(os.Status),
		IsUrgent:        os.IsUrgent,
		DataAbertura:    os.DataAbertura,
		DataFinalizacao: os.DataFinalizacao,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, os := range orders {
		out = append(out, FromServiceOrder(os))
	}
	return out
}
