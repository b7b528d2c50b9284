// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package transport

import (
	"net/http"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"golang.org/x/time/rate"

	"github.com/mattermost/mattermost-track/model"
)

// ThrottleTransport spaces out the requests one backend sends to its
// tracker so a long paging loop stays under the tracker's quota.
type ThrottleTransport struct {
	backend string
	limiter *rate.Limiter
	base    http.RoundTripper
}

// NewThrottleTransport allows perSecond requests with bursts of burst.
func NewThrottleTransport(backend string, perSecond float64, burst int, base http.RoundTripper) *ThrottleTransport {
	if burst <= 0 {
		burst = 1
	}
	return &ThrottleTransport{
		backend: backend,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		base:    base,
	}
}

func (t *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	if err := t.limiter.Wait(req.Context()); err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// The wait would outlast the request deadline.
		return nil, model.NewRateLimited("client-side limit for " + t.backend + " exceeds the request deadline").WithCause(err)
	}
	if waited := time.Since(start); waited > 100*time.Millisecond {
		mlog.Debug("Throttled tracker request",
			mlog.String("backend", t.backend),
			mlog.String("path", req.URL.Path),
			mlog.Duration("waited", waited),
		)
	}
	return t.base.RoundTrip(req)
}
