package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
	"trackswift/internal/service/report"
)

// ReportHandler serves HTTP endpoints for dashboard aggregates.
type ReportHandler struct {
	logger logx.Logger
	uc     reportUsecase
}

// NewReportHandler wires a reportUsecase into HTTP handlers.
func NewReportHandler(logger logx.Logger, uc reportUsecase) *ReportHandler {
	return &ReportHandler{logger: logger, uc: uc}
}

// Summary handles GET /reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.Summary(r.Context(), ownerFromQuery(r))
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, summaryResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		InTransit: s.InTransit,
		Delivered: s.Delivered,
		Revenue:   s.Revenue,
	})
}

// StatusDistribution handles GET /reports/status-distribution.
func (h *ReportHandler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.uc.StatusDistribution(r.Context(), ownerFromQuery(r))
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	out := make(map[string]int64, len(dist))
	for status, count := range dist {
		out[string(status)] = count
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// TimeSeries handles GET /reports/timeseries?granularity=daily|weekly|monthly.
func (h *ReportHandler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var status *domain.ShipmentStatus
	if s := q.Get("status"); s != "" {
		st := domain.ShipmentStatus(s)
		status = &st
	}

	buckets, err := h.uc.TimeSeries(r.Context(),
		report.Granularity(q.Get("granularity")), status, ownerFromQuery(r))
	switch {
	case err == nil:
		out := make([]bucketDTO, 0, len(buckets))
		for _, b := range buckets {
			out = append(out, bucketDTO{BucketStart: b.Start, Count: b.Count})
		}
		writeJSON(h.logger, w, r, http.StatusOK, out)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid granularity or status")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Recent handles GET /reports/recent?limit=n.
func (h *ReportHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	list, err := h.uc.Recent(r.Context(), limit)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toShipmentDTOs(list))
}

func ownerFromQuery(r *http.Request) *string {
	if s := r.URL.Query().Get("owner"); s != "" {
		return &s
	}
	return nil
}
