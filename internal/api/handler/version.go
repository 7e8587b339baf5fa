package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

type updateResponse struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
}

// lastUpdatedResponse usa a grafia "succsess" do serviço Blumenladen
type lastUpdatedResponse struct {
	Success bool   `json:"succsess"`
	Date    string `json:"date"`
}

// UpdateFlowers ingere as faturas pendentes e devolve a nova data de atualização
func UpdateFlowers(catalog *stub.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := catalog.Refresh(time.Now())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao atualizar o catálogo")

			code := apiErrors.ErrInternalServer
			if errors.Is(err, stub.ErrAlreadyUpdating) {
				code = apiErrors.ErrUpdateInProgress
			}
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, updateResponse{Success: true, Date: date})
	}
}

// GetLastUpdated devolve 404 enquanto o catálogo nunca foi atualizado
func GetLastUpdated(catalog *stub.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := catalog.LastUpdated()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "No data available", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, lastUpdatedResponse{Success: true, Date: date})
	}
}
