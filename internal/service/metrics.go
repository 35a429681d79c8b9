package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "saga",
		Name:      "orders_created_total",
		Help:      "Total number of successfully created orders.",
	})

	orderCreateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "saga",
		Name:      "order_create_failures_total",
		Help:      "Total number of failed order creations by stage.",
	}, []string{"stage"})

	stockCommits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "saga",
		Name:      "stock_commits_total",
		Help:      "Total number of successful stock decrements.",
	})

	stockCompensations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "saga",
		Name:      "stock_compensations_total",
		Help:      "Total number of compensating stock increments attempted.",
	})

	compensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "saga",
		Name:      "compensation_failures_total",
		Help:      "Total number of compensating increments that failed and were dropped.",
	})
)
