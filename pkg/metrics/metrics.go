package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	externalRequestsTotal   *prometheus.CounterVec
	externalRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Current database connection pool state",
		}, []string{"service", "state"}),

		externalRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "external_requests_total",
			Help: "Total number of requests to external services",
		}, []string{"service", "target", "status"}),

		externalRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "external_request_duration_seconds",
			Help:    "External request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "target"}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbConnections,
		m.externalRequestsTotal,
		m.externalRequestDuration,
	)

	// serviceName фиксируется на уровне вызовов Observe*, здесь он не нужен,
	// но оставлен в сигнатуре для симметрии с остальными SMC-сервисами
	_ = serviceName

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к базе данных
func (m *Metrics) ObserveDBQuery(service, operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние connection pool
func (m *Metrics) SetDBConnections(service string, open, idle, inUse int) {
	m.dbConnections.WithLabelValues(service, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(service, "idle").Set(float64(idle))
	m.dbConnections.WithLabelValues(service, "in_use").Set(float64(inUse))
}

// ObserveExternalRequest фиксирует запрос к внешнему сервису
// (TenantService, Google Calendar)
func (m *Metrics) ObserveExternalRequest(service, target, status string, duration time.Duration) {
	m.externalRequestsTotal.WithLabelValues(service, target, status).Inc()
	m.externalRequestDuration.WithLabelValues(service, target).Observe(duration.Seconds())
}
