package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	CustomersCreatedTotal   prometheus.Counter
	CustomersUpdatedTotal   prometheus.Counter
	CustomersSuspendedTotal prometheus.Counter
	CustomersDeletedTotal   prometheus.Counter
}

var Business = BusinessMetrics{
	CustomersCreatedTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_service_customers_created_total",
			Help: "Total number of customers successfully created.",
		},
	),
	CustomersUpdatedTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_service_customers_updated_total",
			Help: "Total number of customers successfully replaced via PUT.",
		},
	),
	CustomersSuspendedTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_service_customers_suspended_total",
			Help: "Total number of customers moved to the suspended status.",
		},
	),
	CustomersDeletedTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_service_customers_deleted_total",
			Help: "Total number of customers deleted.",
		},
	),
}

func RecordCustomerCreated() {
	Business.CustomersCreatedTotal.Inc()
}

func RecordCustomerUpdated() {
	Business.CustomersUpdatedTotal.Inc()
}

func RecordCustomerSuspended() {
	Business.CustomersSuspendedTotal.Inc()
}

func RecordCustomerDeleted() {
	Business.CustomersDeletedTotal.Inc()
}
