package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

// ShipmentHandler serves HTTP endpoints for shipment resources.
type ShipmentHandler struct {
	logger logx.Logger
	uc     shipmentUsecase
}

// NewShipmentHandler wires a shipmentUsecase into HTTP handlers.
func NewShipmentHandler(logger logx.Logger, uc shipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{logger: logger, uc: uc}
}

// Create handles POST /shipments. The acting user becomes the owner.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing actor")
		return
	}

	var req createShipmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	in := domain.NewShipment{
		SenderName:   req.SenderName,
		ReceiverName: req.ReceiverName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Owner:        actor.Username,
		Manifest:     fromManifestDTO(req.Manifest),
	}

	rec, err := h.uc.Create(r.Context(), in)
	switch {
	case err == nil:
		w.Header().Set("Location", "/shipments/"+url.PathEscape(rec.TrackingID))
		writeJSON(h.logger, w, r, http.StatusCreated, toShipmentDTO(rec))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Track handles GET /shipments/{tracking_id}.
func (h *ShipmentHandler) Track(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "tracking_id")

	rec, err := h.uc.Track(r.Context(), trackingID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toShipmentDTO(rec))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid tracking id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /shipments with optional status/owner/from/to filters.
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.List(r.Context(), f)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toShipmentDTOs(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid filter")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ListOrders handles GET /orders: shipments joined with their manifests.
func (h *ShipmentHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.ListWithManifests(r.Context(), f)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toOrderDTOs(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid filter")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles PATCH /shipments/{tracking_id}/status.
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, "missing actor")
		return
	}

	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	trackingID := chi.URLParam(r, "tracking_id")
	rec, err := h.uc.UpdateStatus(r.Context(), trackingID, domain.ShipmentStatus(req.Status), actor)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toShipmentDTO(rec))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrPermission):
		writeError(h.logger, w, r, http.StatusForbidden, "admin role required")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func filterFromQuery(r *http.Request) (domain.ShipmentFilter, error) {
	var f domain.ShipmentFilter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status := domain.ShipmentStatus(s)
		if !status.Valid() {
			return f, errors.New("invalid status")
		}
		f.Status = &status
	}
	if s := q.Get("owner"); s != "" {
		f.Owner = &s
	}
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return f, errors.New("invalid from timestamp")
		}
		f.CreatedFrom = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return f, errors.New("invalid to timestamp")
		}
		f.CreatedTo = &t
	}
	return f, nil
}
