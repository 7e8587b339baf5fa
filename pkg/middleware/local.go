package middleware

import (
	"net"
	"net/http"

	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

// LocalOnly restringe a rota a clientes no loopback
func LocalOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
				log.ForContext(r.Context()).WithField("remote_addr", r.RemoteAddr).Warn("admin route refused")
				apiErrors.WriteError(w, apiErrors.ErrForbidden, "admin routes are local only", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
