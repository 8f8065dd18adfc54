package api

import (
	"net/http"
	"time"

	"github.com/benkyo/doushi-api/internal/api/middleware"
	"github.com/benkyo/doushi-api/internal/api/shared"
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// PracticeHandler serves practice submission and due-review listing.
type PracticeHandler struct {
	practiceService service.PracticeService
	validator       *validator.Validate
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(practiceService service.PracticeService) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		validator:       validator.New(),
	}
}

// Submit handles POST /practice. The learner is the authenticated user.
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req PracticeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	today, err := domain.ParseDate(req.LocalDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid local_date, expected YYYY-MM-DD")
		return
	}

	weight := req.DifficultyWeight
	if weight == 0 {
		weight = 1
	}

	result, err := h.practiceService.RecordPractice(r.Context(), userID, req.VerbID, req.Correct, weight, today)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PracticeResponse{
		Record:  NewStudyRecordResponse(result.Record),
		Profile: NewProfileResponse(result.Profile),
	})
}

// ListDue handles GET /reviews/due. The date query parameter is the
// learner's local calendar date; it defaults to the server's date only
// when omitted.
func (h *PracticeHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	date := domain.DateOf(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	records, err := h.practiceService.ListDue(r.Context(), userID, date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := DueReviewsResponse{
		Date:    date.String(),
		Records: make([]StudyRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, NewStudyRecordResponse(record))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
