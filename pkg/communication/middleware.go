package communication

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
)

type key string

// KeyRequestID is the context key of the request id
const KeyRequestID key = "requestID"

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware tags every request with an id and logs it once it is served
func LoggingMiddleware(log logger.Interface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			writer.Header().Set(HeaderRequestID, requestID)

			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			start := time.Now()

			ctx := context.WithValue(request.Context(), KeyRequestID, requestID)
			next.ServeHTTP(recorder, request.WithContext(ctx))

			log.Info(fmt.Sprintf("%s %s %d %s request=%s",
				request.Method, request.URL.Path, recorder.status, time.Since(start), requestID))
		})
	}
}
