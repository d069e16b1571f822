package response

import (
	"time"

	"github.com/rafacrt/studio-sub000/internal/usecase"
)

type FinalizedOSResponse struct {
	ID                    string    `json:"id"`
	Numero                string    `json:"numero"`
	Cliente               string    `json:"cliente"`
	Projeto               string    `json:"projeto"`
	DataAbertura          time.Time `json:"data_abertura"`
	DataFinalizacao       time.Time `json:"data_finalizacao"`
	TempoProducaoSegundos int64     `json:"tempo_producao_segundos"`
}

type ServiceOrderReportResponse struct {
	TotalPorStatus map[string]int        `json:"total_por_status"`
	Finalizadas    []FinalizedOSResponse `json:"finalizadas"`
	GeradoEm       time.Time             `json:"gerado_em"`
}

func FromServiceOrderReport(r usecase.ServiceOrderReport) ServiceOrderReportResponse {
	totals := make(map[string]int, len(r.TotalPorStatus))
	for status, count := range r.TotalPorStatus {
		totals[string(status)] = count
	}

	finalizadas := make([]FinalizedOSResponse, 0, len(r.Finalizadas))
	for _, f := range r.Finalizadas {
		finalizadas = append(finalizadas, FinalizedOSResponse{
			ID:                    f.ID,
			Numero:                f.Numero,
			Cliente:               f.Cliente,
			Projeto:               f.Projeto,
			DataAbertura:          f.DataAbertura,
			DataFinalizacao:       f.DataFinalizacao,
			TempoProducaoSegundos: int64(f.TempoProducao.Seconds()),
		})
	}

	return ServiceOrderReportResponse{
		TotalPorStatus: totals,
		Finalizadas:    finalizadas,
		GeradoEm:       r.GeradoEm,
	}
}
