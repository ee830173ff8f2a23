package models

// ProcessingStats accompanies every pipeline output. Output without stats is
// never written, so a partially recovered run is always visible to callers.
type ProcessingStats struct {
	InputCount     int `json:"input_count"`     // records entering normalization
	SkippedCount   int `json:"skipped_count"`   // rows dropped at parse time
	DuplicateCount int `json:"duplicate_count"` // records removed by dedup
	DefectCount    int `json:"defect_count"`    // recoverable field defects
}

// Add merges parse-stage counters into the normalization stats.
func (s *ProcessingStats) Add(skipped, defects int) {
	s.SkippedCount += skipped
	s.DefectCount += defects
}
