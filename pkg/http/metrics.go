package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/usergraph/social-service/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()
			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			metrics.With(metric.Labels{
				"route": getRouteName(r.Method, r.URL.Path),
				"code":  fmt.Sprintf("%d", meta.Code),
			}).Duration("http_server_request_duration_seconds", time.Since(startedAt))
		})
	})
}
