package request

import "strings"

// PartyRequest creates (or resolves) a Cliente/Parceiro by name.
type PartyRequest struct {
	Nome string `json:"nome" binding:"required"`
}

func (r PartyRequest) ResolveNome() string {
	return strings.TrimSpace(r.Nome)
}
