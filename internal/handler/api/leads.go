package api

import (
	"fmt"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/api_context"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

// SubmitLeadHandler records a contact request from the public site.
func SubmitLeadHandler(svc port.LeadSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.LeadInput
		if err := decodeJSON(w, r, &in); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		l, err := svc.SubmitLead(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Could not submit lead")
			return
		}
		RespondJSON(w, http.StatusCreated, l)
	}
}

func ListLeadsHandler(svc port.LeadManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leads, err := svc.ListLeads(r.Context())
		if err != nil {
			writeServiceError(w, err, "Could not list leads")
			return
		}
		if leads == nil {
			leads = []*model.Lead{}
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, leads)
	}
}

func DeleteLeadHandler(svc port.LeadManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteLead(r.Context(), id); err != nil {
			writeServiceError(w, err, "Could not delete lead")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
