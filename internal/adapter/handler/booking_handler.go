package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingHandler struct {
	bookings *services.BookingService
	exports  *services.ExportService
}

func NewBookingHandler(bookings *services.BookingService, exports *services.ExportService) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		exports:  exports,
	}
}

func (h *BookingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /bookings", h.CreateBooking)
	mux.HandleFunc("GET /bookings", h.History)
	mux.HandleFunc("POST /bookings/{id}/approve", h.ApproveBooking)
	mux.HandleFunc("POST /bookings/{id}/pay", h.PayBooking)
	mux.HandleFunc("POST /bookings/{id}/cancel", h.CancelBooking)
	mux.HandleFunc("POST /bookings/export", h.SubmitExport)
	mux.HandleFunc("GET /bookings/export/{job_id}/status", h.ExportStatus)
	mux.HandleFunc("GET /bookings/export/{job_id}/download", h.ExportDownload)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	resp, err := h.bookings.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) History(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var filter domain.BookingFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}

	bookings, err := h.bookings.History(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bookings": toBookingViews(bookings)})
}

func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	h.runTransition(w, r, h.bookings.Approve)
}

func (h *BookingHandler) PayBooking(w http.ResponseWriter, r *http.Request) {
	h.runTransition(w, r, h.bookings.Pay)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.runTransition(w, r, h.bookings.Cancel)
}

func (h *BookingHandler) SubmitExport(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var filter domain.BookingFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}

	jobID, err := h.exports.Submit(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"jid": jobID})
}

func (h *BookingHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	job, err := h.exports.GetStatus(r.Context(), actor, r.PathValue("job_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     job.Status,
		"percentage": job.Progress,
	})
}

func (h *BookingHandler) ExportDownload(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	jobID := r.PathValue("job_id")

	reader, filename, err := h.exports.Download(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	defer reader.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = io.Copy(w, reader)
}

func (h *BookingHandler) runTransition(w http.ResponseWriter, r *http.Request, transition func(ctx context.Context, actor, bookingID uuid.UUID) (*domain.Booking, error)) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
		return
	}

	booking, err := transition(r.Context(), actor, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"booking_id": booking.ID.String(),
		"status":     string(booking.Status),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrFieldUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrArtifactNotReady),
		errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidVoucher), errors.Is(err, domain.ErrVoucherRejected):
		status = http.StatusUnprocessableEntity
	case strings.HasPrefix(err.Error(), "invalid"):
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func actorFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	actor, err := uuid.Parse(r.Header.Get("X-User-ID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing or invalid X-User-ID header"})
		return uuid.Nil, false
	}

	return actor, true
}

type bookingView struct {
	ID          string  `json:"id"`
	FieldName   string  `json:"field_name"`
	BookingDate string  `json:"booking_date"`
	StartHour   int     `json:"start_hour"`
	EndHour     int     `json:"end_hour"`
	BasePrice   float64 `json:"base_price"`
	FinalPrice  float64 `json:"final_price"`
	Status      string  `json:"status"`
}

func toBookingViews(bookings []domain.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			ID:          b.ID.String(),
			FieldName:   b.FieldName,
			BookingDate: b.BookingDate.Format("2006-01-02"),
			StartHour:   b.StartHour,
			EndHour:     b.EndHour,
			BasePrice:   b.BasePrice,
			FinalPrice:  b.FinalPrice,
			Status:      string(b.Status),
		})
	}

	return views
}
