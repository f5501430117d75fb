package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"
)

type HealthChecks struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks `json:"checks"`
	StatusCode int            `json:"statuscode"`
}

type HealthCheckHandler func() (ok bool, err error)

type namedHandler struct {
	name    string
	handler HealthCheckHandler
}

// HealthChecker answers 200 when every registered check passes, 500 otherwise.
type HealthChecker struct {
	lock     sync.Mutex
	checkers []namedHandler
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checkers: make([]namedHandler, 0),
	}
}

func (hc *HealthChecker) Register(name string, handler HealthCheckHandler) {
	hc.lock.Lock()
	defer hc.lock.Unlock()

	hc.checkers = append(hc.checkers, namedHandler{name: name, handler: handler})
}

func (hc *HealthChecker) Check() HealthCheckHttpResponse {
	hc.lock.Lock()
	checkers := make([]namedHandler, len(hc.checkers))
	copy(checkers, hc.checkers)
	hc.lock.Unlock()

	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0, len(checkers)),
		StatusCode: http.StatusOK,
	}

	for _, checker := range checkers {
		ok, err := checker.handler()

		check := HealthChecks{Name: checker.name, Status: ok && err == nil}
		if err != nil {
			check.Error = err.Error()
		}

		if !check.Status {
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := hc.Check()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	json.NewEncoder(w).Encode(res)
}
