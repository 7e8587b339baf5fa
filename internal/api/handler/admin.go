package handler

import (
	"net/http"

	"github.com/blumenladen/dashboard/pkg/apiErrors"
	"github.com/blumenladen/dashboard/pkg/middleware"
)

type faultsRequest struct {
	FailAll bool `json:"fail_all"`
}

// SetFaults liga ou desliga as falhas simuladas
func SetFaults(faults *middleware.FaultInjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req faultsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		faults.FailAll(req.FailAll)
		writeJSON(w, r, http.StatusOK, faultsRequest{FailAll: faults.Failing()})
	}
}
