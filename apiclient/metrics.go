package apiclient

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts request outcomes and refresh attempts.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Refreshes *prometheus.CounterVec
}

// NewMetrics creates the client collectors and registers them with reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoteladmin",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Logical API requests by method and final state.",
		}, []string{"method", "state"}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoteladmin",
			Subsystem: "client",
			Name:      "refresh_total",
			Help:      "Token refresh calls by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Refreshes)
	}
	return m
}

func (m *Metrics) observeRequest(method string, state State) {
	m.Requests.WithLabelValues(method, state.String()).Inc()
}

func (m *Metrics) observeRefresh(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.Refreshes.WithLabelValues(result).Inc()
}
