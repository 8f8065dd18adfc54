package api

import (
	"net/http"

	"github.com/benkyo/doushi-api/internal/api/shared"
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/service"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// VerbHandler serves the verb catalog and conjugation endpoints.
type VerbHandler struct {
	verbService service.VerbService
}

// NewVerbHandler creates a VerbHandler.
func NewVerbHandler(verbService service.VerbService) *VerbHandler {
	return &VerbHandler{verbService: verbService}
}

// List handles GET /verbs. Optional query parameters class, frequency and
// tag narrow the listing.
func (h *VerbHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.VerbFilter{
		Class:     domain.VerbClass(r.URL.Query().Get("class")),
		Frequency: r.URL.Query().Get("frequency"),
		Tag:       r.URL.Query().Get("tag"),
	}

	switch filter.Class {
	case "", domain.ClassIchidan, domain.ClassGodan, domain.ClassIrregular:
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid verb class")
		return
	}

	verbs, err := h.verbService.ListVerbs(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewVerbListResponse(verbs))
}

// Get handles GET /verbs/{id}.
func (h *VerbHandler) Get(w http.ResponseWriter, r *http.Request) {
	verbID, ok := parseVerbID(w, r)
	if !ok {
		return
	}

	verb, err := h.verbService.GetVerb(r.Context(), verbID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewVerbResponse(verb))
}

// Conjugations handles GET /verbs/{id}/conjugations.
func (h *VerbHandler) Conjugations(w http.ResponseWriter, r *http.Request) {
	verbID, ok := parseVerbID(w, r)
	if !ok {
		return
	}

	verb, forms, err := h.verbService.Conjugations(r.Context(), verbID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewConjugationsResponse(verb, forms))
}

// parseVerbID extracts and parses the {id} URL parameter, writing a 400
// response on failure.
func parseVerbID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	verbID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid verb ID")
		return uuid.Nil, false
	}
	return verbID, true
}
