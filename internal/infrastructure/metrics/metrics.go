package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Board activity counters, exposed on /metrics.
var (
	OSCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "os_created_total",
		Help: "Total de Ordens de Serviço criadas.",
	})

	OSDuplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "os_duplicated_total",
		Help: "Total de Ordens de Serviço criadas por duplicação.",
	})

	OSStatusChanged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "os_status_transitions_total",
		Help: "Total de transições de status, rotuladas pelo status de destino.",
	}, []string{"status"})
)
