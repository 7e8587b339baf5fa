package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// NotFound responde rotas desconhecidas no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "route not found", r.URL.Path)
	})
}
