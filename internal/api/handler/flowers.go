package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

func ListFlowers(catalog *stub.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, catalog.Flowers())
	}
}

// GetFlower lê o id de uma rota catch-all: "rose%2Fred" já chega decodificado
// e "rose/red" cru chega inteiro, então os dois formatos encontram a mesma flor.
func GetFlower(catalog *stub.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := strings.TrimPrefix(httprouter.ParamsFromContext(r.Context()).ByName("product_id"), "/")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "product id is required", nil)
			return
		}

		flower, err := catalog.Flower(productID)
		if errors.Is(err, stub.ErrFlowerNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrFlowerNotFound, err.Error(), nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar flor")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not load flower", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, flower)
	}
}
