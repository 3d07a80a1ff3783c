package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Recovery превращает панику обработчика в 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("panic in %s %s: %v\n%s", r.Method, r.URL.Path, p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
