// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package transport

import (
	"net/http"
	"time"

	"github.com/die-net/lrucache"
	"github.com/m4ns0ur/httpcache"

	"github.com/mattermost/mattermost-track/metrics"
	"github.com/mattermost/mattermost-track/version"
)

const DefaultTimeout = 30 * time.Second

// Options configures the round tripper chain shared by all backends.
type Options struct {
	Backend     string
	Timeout     time.Duration
	RateLimit   float64 // requests per second, zero disables limiting
	Burst       int
	CacheSizeMB int // zero disables the response cache
	Metrics     metrics.Provider
	Base        http.RoundTripper
}

// NewHTTPClient builds metrics -> cache -> throttle -> user agent -> base.
func NewHTTPClient(opts Options) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport
	if opts.Base != nil {
		rt = opts.Base
	}
	rt = &userAgentTransport{agent: version.Current().UserAgent(), base: rt}

	if opts.RateLimit > 0 {
		rt = NewThrottleTransport(opts.Backend, opts.RateLimit, opts.Burst, rt)
	}

	if opts.CacheSizeMB > 0 {
		cached := httpcache.NewTransport(lrucache.New(int64(opts.CacheSizeMB)<<20, 0))
		cached.Transport = rt
		rt = cached
	}

	if opts.Metrics != nil {
		rt = metrics.NewTransport(rt, opts.Backend, opts.Metrics)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Transport: rt, Timeout: timeout}
}

type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(req)
}
