package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is written by WithTimeout when a handler runs out of time.
const TimeoutBody = `{"error":{"code":"TIMEOUT","message":"request timed out"}}`

// WithTimeout wraps next in http.TimeoutHandler, except for requests whose
// path is listed in streaming: the timeout handler buffers the response and
// cannot flush, which long-lived event streams need.
func WithTimeout(next http.Handler, timeout time.Duration, streaming ...string) http.Handler {
	if timeout <= 0 {
		return next
	}

	bounded := http.TimeoutHandler(next, timeout, TimeoutBody)
	skip := make(map[string]struct{}, len(streaming))
	for _, path := range streaming {
		skip[path] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := skip[r.URL.Path]; ok {
			next.ServeHTTP(w, r)

			return
		}

		bounded.ServeHTTP(w, r)
	})
}
