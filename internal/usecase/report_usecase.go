package usecase

import (
	"context"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"
)

// FinalizedOSSummary is one finished OS on the production-time report.
// TempoProducao is DataFinalizacao - DataAbertura.
type FinalizedOSSummary struct {
	ID              string
	Numero          string
	Cliente         string
	Projeto         string
	DataAbertura    time.Time
	DataFinalizacao time.Time
	TempoProducao   time.Duration
}

// ServiceOrderReport aggregates the board for the reporting screen: count of
// cards per column plus elapsed production time for every finalized OS.
type ServiceOrderReport struct {
	TotalPorStatus map[entities.OSStatus]int
	Finalizadas    []FinalizedOSSummary
	GeradoEm       time.Time
}

type IReportUseCase interface {
	BuildServiceOrderReport(ctx context.Context) (ServiceOrderReport, error)
}

type ReportUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IServiceOrderRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) BuildServiceOrderReport(ctx context.Context) (ServiceOrderReport, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return ServiceOrderReport{}, err
	}

	report := ServiceOrderReport{
		TotalPorStatus: make(map[entities.OSStatus]int, len(entities.OSStatusValues())),
		GeradoEm:       time.Now().UTC(),
	}
	for _, status := range entities.OSStatusValues() {
		report.TotalPorStatus[status] = 0
	}

	for _, os := range orders {
		report.TotalPorStatus[os.Status]++

		// A card dragged out of FINALIZADO keeps its first completion date,
		// so membership on the report follows the timestamp, not the status.
		if os.DataFinalizacao == nil {
			continue
		}
		report.Finalizadas = append(report.Finalizadas, FinalizedOSSummary{
			ID:              os.ID,
			Numero:          os.Numero,
			Cliente:         os.Cliente,
			Projeto:         os.Projeto,
			DataAbertura:    os.DataAbertura,
			DataFinalizacao: *os.DataFinalizacao,
			TempoProducao:   os.DataFinalizacao.Sub(os.DataAbertura),
		})
	}

	return report, nil
}
