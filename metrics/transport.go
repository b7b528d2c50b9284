// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Transport is an HTTP transport that observes the duration and cache
// status of every tracker request.
type Transport struct {
	Base    http.RoundTripper
	backend string
	metrics Provider
}

// NewTransport returns a transport using a provided http.RoundTripper as
// the base and a metrics provider
func NewTransport(base http.RoundTripper, backend string, metrics Provider) *Transport {
	return &Transport{base, backend, metrics}
}

func (t *Transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	start := time.Now()
	resp, err = t.Base.RoundTrip(req)
	elapsed := float64(time.Since(start)) / float64(time.Second)
	// rate limit or network error
	if resp == nil && err != nil {
		t.metrics.ObserveTrackerRequestDuration(t.backend, req.Method, req.URL.Path, "error", elapsed)
		return resp, err
	}
	statusCode := strconv.Itoa(resp.StatusCode)
	t.metrics.ObserveTrackerRequestDuration(t.backend, req.Method, req.URL.Path, statusCode, elapsed)

	if resp.Header.Get("X-From-Cache") == "1" {
		t.metrics.IncreaseTrackerCacheHits(t.backend, req.Method, req.URL.Path)
	} else {
		t.metrics.IncreaseTrackerCacheMisses(t.backend, req.Method, req.URL.Path)
	}

	return resp, err
}

// Client returns a new http.Client using Transport
// as the default transport
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}
