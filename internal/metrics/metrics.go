// Package metrics expõe contadores Prometheus da aplicação.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set agrupa os coletores registrados em um registry próprio.
type Set struct {
	registry *prometheus.Registry

	mutations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	httpRequests    *prometheus.CounterVec
}

// New cria e registra os coletores.
func New() *Set {
	s := &Set{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeerp",
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Mutações aplicadas ao store, por entidade e operação.",
		}, []string{"entity", "op"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bikeerp",
			Subsystem: "store",
			Name:      "persist_failures_total",
			Help:      "Falhas ao persistir o snapshot no slot local.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeerp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requisições HTTP atendidas, por método, rota e status.",
		}, []string{"method", "path", "status"}),
	}
	s.registry.MustRegister(s.mutations, s.persistFailures, s.httpRequests)
	return s
}

// MutationObserved conta uma mutação do store.
func (s *Set) MutationObserved(entity, op string) {
	s.mutations.WithLabelValues(entity, op).Inc()
}

// PersistFailure conta uma falha de persistência de snapshot.
func (s *Set) PersistFailure() {
	s.persistFailures.Inc()
}

// RequestObserved conta uma requisição HTTP atendida.
func (s *Set) RequestObserved(method, path, status string) {
	s.httpRequests.WithLabelValues(method, path, status).Inc()
}

// Handler devolve o handler HTTP do endpoint /metrics.
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
