package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-ID"

func WithObservability(observer observability.Observer, requestIDHeader string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := observer.WithRequestID(r.Context(), requestID)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}
