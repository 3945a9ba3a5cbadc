package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roomstay/internal/reservations/service"
	apperrors "roomstay/pkg/errors"
	httputil "roomstay/pkg/http"
	"roomstay/pkg/logger"
	"roomstay/pkg/model"
)

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(service service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

type cancelResponse struct {
	RefundCents int64 `json:"refund_cents"`
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	at := time.Now().UTC()
	if value := r.URL.Query().Get("at"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			h.writeError(w, "Cancel", apperrors.InvalidInput("Invalid 'at' parameter: must be RFC3339"))
			return
		}
		at = parsed
	}

	refundCents, err := h.service.Cancel(r.Context(), id, at)
	if err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	if err := httputil.WriteSuccess(w, cancelResponse{RefundCents: refundCents}); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "error", err)
	}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings := h.service.List(r.Context())

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *ReservationHandler) Availability(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Availability()); err != nil {
		h.log.Error("failed to write success response", "handler", "Availability", "error", err)
	}
}

type remainingResponse struct {
	RoomType  string `json:"room_type"`
	Remaining int    `json:"remaining"`
}

func (h *ReservationHandler) Remaining(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")

	remaining, err := h.service.Remaining(code)
	if err != nil {
		h.writeError(w, "Remaining", err)
		return
	}

	if err := httputil.WriteSuccess(w, remainingResponse{RoomType: code, Remaining: remaining}); err != nil {
		h.log.Error("failed to write success response", "handler", "Remaining", "error", err)
	}
}

type quoteResponse struct {
	RoomType   string `json:"room_type"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	PriceCents int64  `json:"price_cents"`
}

// Quote serves the live price preview; the price stored on a booking is
// always recomputed at submit time.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	code := query.Get("room_type")
	start := query.Get("start")
	end := query.Get("end")

	if code == "" || start == "" || end == "" {
		h.writeError(w, "Quote", apperrors.InvalidInput("room_type, start and end parameters are required"))
		return
	}

	priceCents, err := h.service.Quote(code, start, end)
	if err != nil {
		h.writeError(w, "Quote", err)
		return
	}

	if err := httputil.WriteSuccess(w, quoteResponse{
		RoomType:   code,
		StartTime:  start,
		EndTime:    end,
		PriceCents: priceCents,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, operation string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", operation, "error", writeErr)
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/reservations", h.Create)
	router.DELETE("/reservations/:id", h.Cancel)
	router.GET("/reservations", h.List)
	router.GET("/availability", h.Availability)
	router.GET("/availability/:code", h.Remaining)
	router.GET("/quote", h.Quote)
}
