// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "track"
	trackerNamespace = "tracker"
	commandNamespace = "command"
)

// Provider is the interface that exposes the communication with the metrics system.
type Provider interface {
	// ObserveTrackerRequestDuration stores the elapsed time for a request to a tracker API.
	ObserveTrackerRequestDuration(backend, method, handler, statusCode string, elapsed float64)
	// IncreaseTrackerCacheHits stores the number of responses answered by the
	// HTTP cache, by method and request handler.
	IncreaseTrackerCacheHits(backend, method, handler string)
	// IncreaseTrackerCacheMisses stores the number of responses that went to
	// the network, by method and request handler.
	IncreaseTrackerCacheMisses(backend, method, handler string)
	IncreaseTrackerErrors(backend, kind string)

	ObserveCommandDuration(command string, elapsed float64)
	IncreaseCommandErrors(command, kind string)
}

type PrometheusProvider struct {
	Registry *prometheus.Registry

	trackerRequests    *prometheus.HistogramVec
	trackerCacheHits   *prometheus.CounterVec
	trackerCacheMisses *prometheus.CounterVec
	trackerErrors      *prometheus.CounterVec

	commandDuration *prometheus.HistogramVec
	commandErrors   *prometheus.CounterVec
}

func NewPrometheusProvider() *PrometheusProvider {
	provider := &PrometheusProvider{}
	provider.Registry = prometheus.NewRegistry()

	provider.trackerRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: trackerNamespace,
			Name:      "requests",
			Help:      "Duration of the performed tracker http requests.",
		},
		[]string{"backend", "method", "handler", "status_code"},
	)
	provider.Registry.MustRegister(provider.trackerRequests)

	provider.trackerCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: trackerNamespace,
			Name:      "cache_hits",
			Help:      "Number of cache hits for requested method and handler.",
		},
		[]string{"backend", "method", "handler"},
	)
	provider.Registry.MustRegister(provider.trackerCacheHits)

	provider.trackerCacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: trackerNamespace,
			Name:      "cache_miss",
			Help:      "Number of cache misses for requested method and handler.",
		},
		[]string{"backend", "method", "handler"},
	)
	provider.Registry.MustRegister(provider.trackerCacheMisses)

	provider.trackerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: trackerNamespace,
			Name:      "errors",
			Help:      "Number of failed tracker operations by error kind.",
		},
		[]string{"backend", "kind"},
	)
	provider.Registry.MustRegister(provider.trackerErrors)

	provider.commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: commandNamespace,
			Name:      "duration",
			Help:      "Duration for the executed commands.",
		},
		[]string{"command"},
	)
	provider.Registry.MustRegister(provider.commandDuration)

	provider.commandErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: commandNamespace,
			Name:      "errors",
			Help:      "Number of failed commands.",
		},
		[]string{"command", "kind"},
	)
	provider.Registry.MustRegister(provider.commandErrors)

	return provider
}

func (p *PrometheusProvider) ObserveTrackerRequestDuration(backend, method, handler, statusCode string, elapsed float64) {
	p.trackerRequests.With(
		prometheus.Labels{"backend": backend, "method": method, "handler": handler, "status_code": statusCode},
	).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseTrackerCacheHits(backend, method, handler string) {
	p.trackerCacheHits.WithLabelValues(backend, method, handler).Add(1)
}

func (p *PrometheusProvider) IncreaseTrackerCacheMisses(backend, method, handler string) {
	p.trackerCacheMisses.WithLabelValues(backend, method, handler).Add(1)
}

func (p *PrometheusProvider) IncreaseTrackerErrors(backend, kind string) {
	p.trackerErrors.WithLabelValues(backend, kind).Add(1)
}

func (p *PrometheusProvider) ObserveCommandDuration(command string, elapsed float64) {
	p.commandDuration.With(prometheus.Labels{"command": command}).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseCommandErrors(command, kind string) {
	p.commandErrors.WithLabelValues(command, kind).Add(1)
}

// WriteToFile dumps the registry in the text exposition format, for node
// exporter textfile collection.
func (p *PrometheusProvider) WriteToFile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, p.Registry); err != nil {
		return errors.Wrapf(err, "unable to write metrics to %s", filename)
	}
	return nil
}
