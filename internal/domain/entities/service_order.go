package entities

import "time"

// OSStatus represents the workflow stage of an Ordem de Serviço.
//
// Domain notes:
//   - The board UI allows moving a card to any column at any time, so the
//     status setter is unconstrained: any value can follow any other value.
//     Only enum membership is validated.
//   - FINALIZADO is terminal for timestamping purposes only: the first
//     transition into it stamps DataFinalizacao, and nothing ever clears it.

type OSStatus string

const (
	OSStatusNaFila             OSStatus = "NA_FILA"
	OSStatusAguardandoCliente  OSStatus = "AGUARDANDO_CLIENTE"
	OSStatusEmProducao         OSStatus = "EM_PRODUCAO"
	OSStatusAguardandoParceiro OSStatus = "AGUARDANDO_PARCEIRO"
	OSStatusFinalizado         OSStatus = "FINALIZADO"
)

// OSStatusValues lists every valid status in board-column order.
func OSStatusValues() []OSStatus {
	return []OSStatus{
		OSStatusNaFila,
		OSStatusAguardandoCliente,
		OSStatusEmProducao,
		OSStatusAguardandoParceiro,
		OSStatusFinalizado,
	}
}

func (s OSStatus) Valid() bool {
	switch s {
	case OSStatusNaFila, OSStatusAguardandoCliente, OSStatusEmProducao,
		OSStatusAguardandoParceiro, OSStatusFinalizado:
		return true
	}
	return false
}

// ServiceOrder is the Ordem de Serviço record tracked across the kanban board.
//
// Identity:
//   - ID is the opaque storage key, assigned once and never reused.
//   - Numero is the human-facing sequential identifier ("000001", "000042", ...),
//     zero-padded to at least six digits, unique and monotonically increasing
//     per store. It is independent of ID and is never reassigned.
//
// DataFinalizacao records the FIRST completion of the OS. Moving a card out of
// FINALIZADO does not clear it; re-entering FINALIZADO does not overwrite it.
type ServiceOrder struct {
	ID              string     `json:"id"`
	Numero          string     `json:"numero"`
	ClienteID       string     `json:"cliente_id"`
	Cliente         string     `json:"cliente"`
	ParceiroID      string     `json:"parceiro_id,omitempty"`
	Parceiro        string     `json:"parceiro,omitempty"`
	Projeto         string     `json:"projeto"`
	Tarefa          string     `json:"tarefa"`
	Observacoes     string     `json:"observacoes"`
	TempoTrabalhado string     `json:"tempo_trabalhado,omitempty"`
	Status          OSStatus   `json:"status"`
	IsUrgent        bool       `json:"is_urgent"`
	DataAbertura    time.Time  `json:"data_abertura"`
	DataFinalizacao *time.Time `json:"data_finalizacao,omitempty"`
}
