// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/chatterfix/internal/logging"
)

type Monitor struct {
	service string

	responseTimeMetric           *prometheus.HistogramVec
	dependencyAvailabilityMetric *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	metric, err := m.responseTimeMetric.GetMetricWith(tags)

	if err != nil {
		return err
	}

	metric.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	metric, err := m.dependencyAvailabilityMetric.GetMetricWith(tags)

	if err != nil {
		return err
	}

	metric.Set(value)

	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTimeMetric = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "response time of http calls partitioned by route and status",
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailabilityMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "availability of upstream dependencies, 1 up 0 down",
		},
		[]string{"component"},
	)

	prometheus.MustRegister(m.responseTimeMetric, m.dependencyAvailabilityMetric)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
