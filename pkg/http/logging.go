package http

import (
	"net/http"

	"github.com/usergraph/social-service/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths,
		HealthPath,
	)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"routeName":    getRouteName(r.Method, r.URL.Path),
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				requestLogger.WithField("panic", log.Fields{
					"message": meta.Panic.Message,
					"stack":   string(meta.Panic.Stacktrace),
				}).Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
