package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/commrec/backend/src/export"
	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/services"
	"github.com/username/commrec/backend/src/utils"
)

type ReportHandler struct {
	service services.ReconciliationService
}

func NewReportHandler(service services.ReconciliationService) *ReportHandler {
	return &ReportHandler{service: service}
}

// HandleGetLatestRun returns the latest run result with ETag support.
func (h *ReportHandler) HandleGetLatestRun(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetLatestRunResult()
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	if etag, err := utils.GenerateETag(result); err == nil {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	utils.SendJSON(w, result, http.StatusOK)
}

// HandleGetTopPerformers returns the agent ranking over the latest run.
// Optional ?n= overrides the configured list length.
func (h *ReportHandler) HandleGetTopPerformers(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.SendJSONError(w, fmt.Sprintf("invalid top performer count %q", raw), http.StatusBadRequest)
			return
		}
		n = parsed
	}

	performers, err := h.service.GetTopPerformers(n)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}
	utils.SendJSON(w, performers, http.StatusOK)
}

// HandleGetCarrierSummaries returns per-carrier aggregates over the latest
// run.
func (h *ReportHandler) HandleGetCarrierSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.GetCarrierSummaries()
	if err != nil {
		h.sendServiceError(w, err)
		return
	}
	utils.SendJSON(w, summaries, http.StatusOK)
}

// HandleGetPeriodSummary returns the rollup for one commission period,
// ?period=YYYY-MM.
func (h *ReportHandler) HandleGetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if err := utils.ValidatePeriod(period); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.GetPeriodSummary(period)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}
	utils.SendJSON(w, summary, http.StatusOK)
}

// HandleExportRunRecords streams a run's normalized records as the canonical
// 14-column CSV.
func (h *ReportHandler) HandleExportRunRecords(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")
	records, err := h.service.GetRunRecords(runID)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "normalized_commissions_"+runID+".csv"))
	if err := export.WriteRecordsCSV(w, records); err != nil {
		logger.L.Error("Error writing CSV export", "runID", runID, "error", err)
	}
}

func (h *ReportHandler) sendServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrRunNotFound) {
		utils.SendJSONError(w, "no reconciliation runs available", http.StatusNotFound)
		return
	}
	logger.L.Error("Error retrieving report data", "error", err)
	utils.SendJSONError(w, "An internal error occurred while retrieving report data.", http.StatusInternalServerError)
}
