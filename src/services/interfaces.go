package services

import (
	"errors"

	"github.com/username/commrec/backend/src/database"
	"github.com/username/commrec/backend/src/models"
)

var (
	ErrParsingFailed = errors.New("error parsing carrier file")
	ErrRunNotFound   = errors.New("reconciliation run not found")
	ErrEmptyRun      = errors.New("no carrier batches supplied")
)

// CarrierBatch is one carrier's raw tabular input for a run, already read
// from disk by the ingestion collaborator.
type CarrierBatch struct {
	CarrierID string
	Period    string // YYYY-MM
	Rows      []models.RawRow
}

// RunResult is everything a completed run exposes: the persisted run with
// its statistics plus the aggregates computed over the normalized output.
type RunResult struct {
	Run              database.Run              `json:"run"`
	RecordCount      int                       `json:"record_count"`
	TopPerformers    []models.TopPerformer     `json:"top_performers"`
	CarrierSummaries []models.CarrierSummary   `json:"carrier_summaries"`
	SimilarAgents    []models.SimilarAgentPair `json:"similar_agents,omitempty"`
}

// ReconciliationService runs the normalization pipeline end to end and
// serves results of past runs.
type ReconciliationService interface {
	ProcessRun(batches []CarrierBatch) (*RunResult, error)
	GetLatestRunResult() (*RunResult, error)
	GetRunResult(runID string) (*RunResult, error)
	GetRunRecords(runID string) ([]models.Record, error)
	GetTopPerformers(n int) ([]models.TopPerformer, error)
	GetCarrierSummaries() ([]models.CarrierSummary, error)
	GetPeriodSummary(period string) (models.PeriodSummary, error)
}
