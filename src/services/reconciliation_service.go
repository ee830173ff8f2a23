package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/commrec/backend/src/analyzer"
	"github.com/username/commrec/backend/src/database"
	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/normalizer"
	"github.com/username/commrec/backend/src/parsers"
)

const (
	ckLatestRunResult = "res_latest_run_result"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type reconciliationServiceImpl struct {
	registry    *parsers.Registry
	normalizer  *normalizer.Normalizer
	analyzer    *analyzer.PerformanceAnalyzer
	reportCache *cache.Cache
	topN        int
}

func NewReconciliationService(registry *parsers.Registry, reportCache *cache.Cache, topN int) ReconciliationService {
	return &reconciliationServiceImpl{
		registry:    registry,
		normalizer:  normalizer.New(),
		analyzer:    analyzer.New(),
		reportCache: reportCache,
		topN:        topN,
	}
}

// ProcessRun executes one full pipeline run: dispatch each batch to its
// carrier parser, merge, normalize, persist, aggregate. An unknown carrier
// aborts before any parsing; parser-level invariant violations abort the
// whole run.
func (s *reconciliationServiceImpl) ProcessRun(batches []CarrierBatch) (*RunResult, error) {
	overallStartTime := time.Now()
	if len(batches) == 0 {
		return nil, ErrEmptyRun
	}

	// Resolve every carrier up front so a configuration error surfaces
	// before any row is parsed.
	resolved := make([]parsers.Parser, len(batches))
	for i, batch := range batches {
		p, err := s.registry.Get(batch.CarrierID)
		if err != nil {
			return nil, err
		}
		resolved[i] = p
	}

	var merged []models.Record
	skipped, parseDefects := 0, 0
	for i, batch := range batches {
		result, err := resolved[i].Parse(batch.Period, batch.Rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
		}
		logger.L.Info("Carrier batch parsed",
			"carrier", resolved[i].Carrier(),
			"rows", len(batch.Rows),
			"records", len(result.Records),
			"skipped", result.Skipped)
		merged = append(merged, result.Records...)
		skipped += result.Skipped
		parseDefects += result.Defects
	}

	records, stats := s.normalizer.Normalize(merged)
	stats.Add(skipped, parseDefects)

	run := database.Run{ID: uuid.NewString(), CreatedAt: time.Now().UTC(), Stats: stats}
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = normalizer.DedupKey(r)
	}
	if err := database.SaveRun(run, records, keys); err != nil {
		return nil, err
	}

	result := s.buildResult(run, records)
	s.reportCache.Set(ckLatestRunResult, result, cache.DefaultExpiration)

	logger.L.Info("ProcessRun END",
		"runID", run.ID,
		"records", len(records),
		"duration", time.Since(overallStartTime))
	return result, nil
}

func (s *reconciliationServiceImpl) GetLatestRunResult() (*RunResult, error) {
	if cached, found := s.reportCache.Get(ckLatestRunResult); found {
		logger.L.Debug("Cache hit for latest run result")
		return cached.(*RunResult), nil
	}

	run, err := database.GetLatestRun()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.resultFromStorage(run)
}

func (s *reconciliationServiceImpl) GetRunResult(runID string) (*RunResult, error) {
	run, err := database.GetRun(runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.resultFromStorage(run)
}

func (s *reconciliationServiceImpl) GetRunRecords(runID string) ([]models.Record, error) {
	if _, err := database.GetRun(runID); errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	} else if err != nil {
		return nil, err
	}
	return database.GetRunRecords(runID)
}

// latestRecords loads the normalized output of the most recent run for the
// report endpoints; aggregation always runs over stored post-normalization
// records, never raw input.
func (s *reconciliationServiceImpl) latestRecords() ([]models.Record, error) {
	run, err := database.GetLatestRun()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return database.GetRunRecords(run.ID)
}

func (s *reconciliationServiceImpl) GetTopPerformers(n int) ([]models.TopPerformer, error) {
	records, err := s.latestRecords()
	if err != nil {
		return nil, err
	}
	return s.analyzer.TopPerformers(records, n), nil
}

func (s *reconciliationServiceImpl) GetCarrierSummaries() ([]models.CarrierSummary, error) {
	records, err := s.latestRecords()
	if err != nil {
		return nil, err
	}
	return s.analyzer.CarrierSummaries(records), nil
}

func (s *reconciliationServiceImpl) GetPeriodSummary(period string) (models.PeriodSummary, error) {
	records, err := s.latestRecords()
	if err != nil {
		return models.PeriodSummary{}, err
	}
	return s.analyzer.PeriodSummary(records, period), nil
}

func (s *reconciliationServiceImpl) resultFromStorage(run database.Run) (*RunResult, error) {
	records, err := database.GetRunRecords(run.ID)
	if err != nil {
		return nil, err
	}
	return s.buildResult(run, records), nil
}

func (s *reconciliationServiceImpl) buildResult(run database.Run, records []models.Record) *RunResult {
	return &RunResult{
		Run:              run,
		RecordCount:      len(records),
		TopPerformers:    s.analyzer.TopPerformers(records, s.topN),
		CarrierSummaries: s.analyzer.CarrierSummaries(records),
		SimilarAgents:    normalizer.SimilarAgentPairs(records, normalizer.DefaultSimilarityThreshold),
	}
}
