package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/username/commrec/backend/src/config"
	"github.com/username/commrec/backend/src/ingest"
	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/parsers"
	"github.com/username/commrec/backend/src/security/validation"
	"github.com/username/commrec/backend/src/services"
	"github.com/username/commrec/backend/src/utils"
)

type ReconcileHandler struct {
	service services.ReconciliationService
}

func NewReconcileHandler(service services.ReconciliationService) *ReconcileHandler {
	return &ReconcileHandler{service: service}
}

// HandleReconcile accepts one multipart file per carrier — the part name is
// the carrier identifier — runs the full pipeline and returns the run
// result. The commission period comes from the "period" form field when
// present, otherwise from each export's filename.
func (h *ReconcileHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		utils.SendJSONError(w, "No carrier files supplied. Attach one file per carrier, named by carrier id.", http.StatusBadRequest)
		return
	}

	periodOverride := r.FormValue("period")

	var batches []services.CarrierBatch
	for carrierID, fileHeaders := range r.MultipartForm.File {
		for _, fileHeader := range fileHeaders {
			if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
				utils.SendJSONError(w, fmt.Sprintf("File %q too large, max %d MB", fileHeader.Filename, config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
				return
			}
			if err := validation.ValidateClientContentType(fileHeader.Header.Get("Content-Type")); err != nil {
				utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}

			period := periodOverride
			if period == "" {
				p, err := utils.PeriodFromFilename(fileHeader.Filename)
				if err != nil {
					utils.SendJSONError(w, fmt.Sprintf("Cannot determine commission period for %q: %v. Supply a 'period' form field.", fileHeader.Filename, err), http.StatusBadRequest)
					return
				}
				period = p
			}

			file, err := fileHeader.Open()
			if err != nil {
				logger.L.Warn("Failed to open uploaded file", "carrier", carrierID, "filename", fileHeader.Filename, "error", err)
				utils.SendJSONError(w, fmt.Sprintf("Failed to read file %q", fileHeader.Filename), http.StatusBadRequest)
				return
			}

			if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
				file.Close()
				logger.L.Warn("Server-side file content validation failed", "carrier", carrierID, "filename", fileHeader.Filename, "error", err)
				utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}

			rows, err := ingest.ReadTabular(fileHeader.Filename, file)
			file.Close()
			if err != nil {
				logger.L.Warn("Failed to read carrier export", "carrier", carrierID, "filename", fileHeader.Filename, "error", err)
				utils.SendJSONError(w, fmt.Sprintf("Error reading %q: %v", fileHeader.Filename, err), http.StatusBadRequest)
				return
			}

			batches = append(batches, services.CarrierBatch{
				CarrierID: carrierID,
				Period:    period,
				Rows:      rows,
			})
		}
	}

	result, err := h.service.ProcessRun(batches)
	if err != nil {
		switch {
		case errors.Is(err, parsers.ErrUnknownCarrier):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrParsingFailed), errors.Is(err, services.ErrEmptyRun):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			logger.L.Error("Internal error processing reconciliation run", "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the run. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	utils.SendJSON(w, result, http.StatusOK)
}
