// Package metrics expone contadores Prometheus de mutaciones de inventario y logins.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/componentes-api/internal/domain"
)

// Resultados de login registrados en login_attempts_total.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginRateLimited        = "rate_limited"
	LoginBackendFailure     = "backend_failure"
)

// Collector contadores de la API.
type Collector struct {
	mutations     *prometheus.CounterVec
	loginAttempts *prometheus.CounterVec
}

// NewCollector crea el Collector y registra sus métricas en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "componentes_mutation_results_total",
			Help: "Mutaciones por operación y resultado",
		}, []string{"op", "result"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "componentes_login_attempts_total",
			Help: "Intentos de login por resultado",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.mutations, c.loginAttempts)
	return c
}

// RecordMutation suma una mutación con su resultado.
func (c *Collector) RecordMutation(op string, res domain.Result) {
	c.mutations.WithLabelValues(op, res.String()).Inc()
}

// RecordLogin suma un intento de login.
func (c *Collector) RecordLogin(outcome string) {
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

// Handler devuelve el handler de scrape para gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
