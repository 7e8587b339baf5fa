package middleware

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

// FaultInjector faz o stub responder 500 em todas as rotas de dados, para
// exercitar os valores sentinela do cliente.
type FaultInjector struct {
	failAll atomic.Bool
}

func NewFaultInjector() *FaultInjector {
	return &FaultInjector{}
}

func (f *FaultInjector) FailAll(enabled bool) {
	f.failAll.Store(enabled)
	log.L.WithField("fail_all", enabled).Info("fault injection updated")
}

func (f *FaultInjector) Failing() bool {
	return f.failAll.Load()
}

// Middleware ignora healthcheck e rotas administrativas
func (f *FaultInjector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" || strings.HasPrefix(r.URL.Path, "/admin/") || !f.Failing() {
				next.ServeHTTP(w, r)
				return
			}

			log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("fault injection: returning 500")
			apiErrors.WriteError(w, apiErrors.ErrInjectedFailure, "simulated failure", nil)
		})
	}
}
