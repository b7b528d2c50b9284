// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	prometheusModels "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	provider := NewPrometheusProvider()

	t.Run("Should store metrics for tracker requests duration", func(t *testing.T) {
		labels := prometheus.Labels{"backend": "jira", "handler": "handler", "method": "GET", "status_code": "200"}
		m := &prometheusModels.Metric{}
		data, err := provider.trackerRequests.GetMetricWith(labels)
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Histogram).Write(m))
		require.Equal(t, uint64(0), m.Histogram.GetSampleCount())
		require.Equal(t, 0.0, m.Histogram.GetSampleSum())
		provider.ObserveTrackerRequestDuration("jira", "GET", "handler", "200", 1)
		data, err = provider.trackerRequests.GetMetricWith(labels)
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Histogram).Write(m))
		require.Equal(t, uint64(1), m.Histogram.GetSampleCount())
		require.InDelta(t, 1, m.Histogram.GetSampleSum(), 0.001)
	})

	t.Run("Should store metrics for tracker requests cache hits", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		data, err := provider.trackerCacheHits.GetMetricWithLabelValues("github", "GET", "test")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(0), m.Counter.GetValue())
		provider.IncreaseTrackerCacheHits("github", "GET", "test")
		data, err = provider.trackerCacheHits.GetMetricWithLabelValues("github", "GET", "test")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})

	t.Run("Should store metrics for tracker errors", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		provider.IncreaseTrackerErrors("youtrack", "unauthorized")
		data, err := provider.trackerErrors.GetMetricWithLabelValues("youtrack", "unauthorized")
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Counter).Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})

	t.Run("Should store metrics for commands", func(t *testing.T) {
		m := &prometheusModels.Metric{}
		provider.ObserveCommandDuration("issue get", 0.5)
		data, err := provider.commandDuration.GetMetricWith(prometheus.Labels{"command": "issue get"})
		require.NoError(t, err)
		require.NoError(t, data.(prometheus.Histogram).Write(m))
		require.Equal(t, uint64(1), m.Histogram.GetSampleCount())

		provider.IncreaseCommandErrors("issue get", "issue_not_found")
		counter, err := provider.commandErrors.GetMetricWithLabelValues("issue get", "issue_not_found")
		require.NoError(t, err)
		require.NoError(t, counter.Write(m))
		require.Equal(t, float64(1), m.Counter.GetValue())
	})

	t.Run("Should write the registry to a text file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "track.prom")
		require.NoError(t, provider.WriteToFile(filename))
		b, err := os.ReadFile(filename)
		require.NoError(t, err)
		require.True(t, strings.Contains(string(b), "track_command_duration"))
	})
}

func TestTransport(t *testing.T) {
	provider := NewPrometheusProvider()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cached" {
			w.Header().Set("X-From-Cache", "1")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewTransport(http.DefaultTransport, "gitlab", provider).Client()
	for _, path := range []string{"/cached", "/fresh"} {
		resp, err := client.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
	}

	m := &prometheusModels.Metric{}
	hits, err := provider.trackerCacheHits.GetMetricWithLabelValues("gitlab", "GET", "/cached")
	require.NoError(t, err)
	require.NoError(t, hits.Write(m))
	require.Equal(t, float64(1), m.Counter.GetValue())

	misses, err := provider.trackerCacheMisses.GetMetricWithLabelValues("gitlab", "GET", "/fresh")
	require.NoError(t, err)
	require.NoError(t, misses.Write(m))
	require.Equal(t, float64(1), m.Counter.GetValue())
}
