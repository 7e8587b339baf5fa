package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/log"
)

func GetCosts(catalog *stub.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupBy := httprouter.ParamsFromContext(r.Context()).ByName("group_by")
		query := r.URL.Query()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"group_by": groupBy,
			"from":     query.Get("from"),
			"to":       query.Get("to"),
		}).Debug("Getting costs")

		costs, err := catalog.TotalCosts(groupBy, query.Get("from"), query.Get("to"))
		switch {
		case errors.Is(err, stub.ErrUnknownGroup):
			apiErrors.WriteError(w, apiErrors.ErrUnknownGroup, err.Error(), []string{
				stub.GroupProductID, stub.GroupDate, stub.GroupMonth, stub.GroupYear,
			})
			return
		case errors.Is(err, stub.ErrInvalidRange):
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		case err != nil:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not compute costs", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, costs)
	}
}
