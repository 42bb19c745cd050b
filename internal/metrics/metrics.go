package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	OrdersCreated        prometheus.Counter
	Reconciliations      *prometheus.CounterVec
	CreditsGrantedTotal  prometheus.Counter
	LabelsMintedTotal    prometheus.Counter
	MintRejectionsTotal  prometheus.Counter
	GatewayCallsTotal    *prometheus.CounterVec

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionErrors prometheus.Counter

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelmint_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labelmint_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "labelmint_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		// Business Metrics
		OrdersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "labelmint_orders_created_total",
				Help: "Total number of gateway orders created",
			},
		),
		Reconciliations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelmint_reconciliations_total",
				Help: "Reconciliation attempts by entry point and outcome",
			},
			[]string{"source", "outcome"},
		),
		CreditsGrantedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "labelmint_credits_granted_total",
				Help: "Total credits granted to ledgers",
			},
		),
		LabelsMintedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "labelmint_labels_minted_total",
				Help: "Total number of labels minted",
			},
		),
		MintRejectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "labelmint_mint_rejections_total",
				Help: "Mints rejected for insufficient credits",
			},
		),
		GatewayCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelmint_gateway_calls_total",
				Help: "Calls to the payment gateway by operation and status",
			},
			[]string{"operation", "status"},
		),

		// Database Metrics
		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "labelmint_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "labelmint_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labelmint_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelmint_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "labelmint_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),

		// Validation Metrics
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelmint_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labelmint_validation_duration_seconds",
				Help:    "Duration of validation operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),
	}
}

// --- Recording Methods ---

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordOrderCreated() {
	m.OrdersCreated.Inc()
}

func (m *Metrics) RecordReconciliation(source, outcome string) {
	m.Reconciliations.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) RecordCreditsGranted(credits int64) {
	m.CreditsGrantedTotal.Add(float64(credits))
}

func (m *Metrics) RecordLabelsMinted(count int) {
	m.LabelsMintedTotal.Add(float64(count))
}

func (m *Metrics) RecordMintRejected() {
	m.MintRejectionsTotal.Inc()
}

func (m *Metrics) RecordGatewayCall(operation, status string) {
	m.GatewayCallsTotal.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
