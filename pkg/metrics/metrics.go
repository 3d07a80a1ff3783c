package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы записи безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	RentalsStarted   *prometheus.CounterVec
	RentalsCompleted *prometheus.CounterVec
	RentalAlerts     *prometheus.CounterVec
	ActiveRentals    *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(service string) *Metrics {
	return NewWithRegistry(service, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(service string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: service,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		RentalsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "surfshop_rentals_started_total",
			Help: "Total number of started rentals",
		}, []string{"service"}),
		RentalsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "surfshop_rentals_completed_total",
			Help: "Total number of completed rentals",
		}, []string{"service"}),
		RentalAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "surfshop_rental_alerts_total",
			Help: "Total number of rental alerts raised",
		}, []string{"service", "kind"}),
		ActiveRentals: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "surfshop_active_rentals",
			Help: "Number of rentals currently in progress",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.RentalsStarted,
		m.RentalsCompleted,
		m.RentalAlerts,
		m.ActiveRentals,
	)

	return m
}

// Service возвращает имя сервиса, которым помечаются метрики
func (m *Metrics) Service() string {
	if m == nil {
		return ""
	}
	return m.service
}

// RentalStarted увеличивает счётчик начатых аренд
func (m *Metrics) RentalStarted() {
	if m == nil {
		return
	}
	m.RentalsStarted.WithLabelValues(m.service).Inc()
}

// RentalCompleted увеличивает счётчик завершённых аренд
func (m *Metrics) RentalCompleted() {
	if m == nil {
		return
	}
	m.RentalsCompleted.WithLabelValues(m.service).Inc()
}

// RentalAlert учитывает поднятое уведомление по аренде
func (m *Metrics) RentalAlert(kind string) {
	if m == nil {
		return
	}
	m.RentalAlerts.WithLabelValues(m.service, kind).Inc()
}

// SetActiveRentals выставляет текущее число аренд в процессе
func (m *Metrics) SetActiveRentals(n int) {
	if m == nil {
		return
	}
	m.ActiveRentals.WithLabelValues(m.service).Set(float64(n))
}
