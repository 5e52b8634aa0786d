package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Check - проверка зависимости для readiness (например, Ping хранилища)
type Check func(ctx context.Context) error

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler возвращает handler для /health.
// 200 {"status":"ok"} если все проверки прошли, 503 {"status":"not ready"} со списком ошибок иначе.
// Каждая проверка ограничена timeout.
func Handler(timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response{Status: "ok"}
		code := http.StatusOK

		for name, check := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			err := check(ctx)
			cancel()

			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(checks))
			}
			if err != nil {
				resp.Status = "not ready"
				resp.Checks[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
