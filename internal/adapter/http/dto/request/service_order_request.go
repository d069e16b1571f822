package request

import "strings"

// ServiceOrderRequest is the creation payload sent by the board UI.
//
// Cliente/Parceiro carry display names, not ids: the backend resolves them
// with find-or-create semantics during the creation transaction.
type ServiceOrderRequest struct {
	Cliente         string `json:"cliente" binding:"required"`
	Parceiro        string `json:"parceiro"`
	Projeto         string `json:"projeto" binding:"required"`
	Tarefa          string `json:"tarefa" binding:"required"`
	Observacoes     string `json:"observacoes"`
	TempoTrabalhado string `json:"tempo_trabalhado"`
	Status          string `json:"status"`
	IsUrgent        bool   `json:"is_urgent"`
}

func (r ServiceOrderRequest) ResolveCliente() string {
	return strings.TrimSpace(r.Cliente)
}

func (r ServiceOrderRequest) ResolveParceiro() string {
	return strings.TrimSpace(r.Parceiro)
}

// StatusUpdateRequest moves a card to another column.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
