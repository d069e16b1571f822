package entities

import (
	"errors"
	"time"
)

// PartyKind distinguishes the two lightweight reference entities an OS can
// point at. Both share the same find-or-create contract, so the rest of the
// codebase treats them uniformly as Party and carries the kind alongside.

type PartyKind string

const (
	PartyKindCliente  PartyKind = "cliente"
	PartyKindParceiro PartyKind = "parceiro"
)

// ErrPartyInUse is returned by repositories when a delete would orphan
// ServiceOrder references. Deleting a referenced Cliente/Parceiro is forbidden.
var ErrPartyInUse = errors.New("party is referenced by a service order")

// Party is a Cliente or Parceiro row. Identity is keyed on the exact name
// string (case-sensitive, no normalization); duplicate logical entities from
// case/whitespace variants are a known data-quality limitation.
type Party struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	CriadoEm time.Time `json:"criado_em"`
}
