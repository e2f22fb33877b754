// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	emails       *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncEmailDispatch(tags map[string]string) error {
	if m.emails == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.emails.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.responseTime = are.ExistingCollector.(*prometheus.HistogramVec)
			return
		}
		m.logger.Errorf("failed to register http_response_time_seconds: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.dependencies = are.ExistingCollector.(*prometheus.GaugeVec)
			return
		}
		m.logger.Errorf("failed to register dependency_available: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.emails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "email_dispatch_total",
			Help:        "email_dispatch_total",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"template", "outcome"},
	)

	if err := prometheus.Register(m.emails); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.emails = are.ExistingCollector.(*prometheus.CounterVec)
			return
		}
		m.logger.Errorf("failed to register email_dispatch_total: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
