package response

import (
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
)

type PartyResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	CriadoEm time.Time `json:"criado_em"`
}

func FromParty(p entities.Party) PartyResponse {
	return PartyResponse{ID: p.ID, Nome: p.Nome, CriadoEm: p.CriadoEm}
}

func FromParties(parties []entities.Party) []PartyResponse {
	out := make([]PartyResponse, 0, len(parties))
	for _, p := range parties {
		out = append(out, FromParty(p))
	}
	return out
}
