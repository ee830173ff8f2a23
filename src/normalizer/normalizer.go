package normalizer

import (
	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/utils"
)

// Normalizer turns the merged multi-carrier record sequence into a clean,
// deduplicated sequence. Stages run in order: field standardization, dedup
// key derivation, duplicate elimination. Cross-carrier agent reconciliation
// is exact-match-after-standardization only; near-miss names surface through
// SimilarAgentPairs without being merged.
type Normalizer struct{}

func New() *Normalizer { return &Normalizer{} }

// Normalize cleans every record in place, drops duplicates, and reports the
// processing statistics that must always accompany output.
func (n *Normalizer) Normalize(records []models.Record) ([]models.Record, models.ProcessingStats) {
	stats := models.ProcessingStats{InputCount: len(records)}
	if len(records) == 0 {
		return []models.Record{}, stats
	}

	for i := range records {
		stats.DefectCount += standardizeRecord(&records[i])
	}

	deduped, removed := dedupe(records)
	stats.DuplicateCount = removed

	logger.L.Info("Normalization complete",
		"input", stats.InputCount,
		"output", len(deduped),
		"duplicatesRemoved", stats.DuplicateCount,
		"defects", stats.DefectCount)
	return deduped, stats
}

// standardizeRecord applies the field-level cleaning rules and returns the
// number of defects flagged on this record.
func standardizeRecord(r *models.Record) int {
	defects := 0

	r.AgentName = CleanAgentName(r.AgentName)
	if r.AgencyName != "" {
		r.AgencyName = CleanName(r.AgencyName)
	}
	r.MemberName = collapseWhitespace(r.MemberName)
	r.MemberID = CleanMemberID(r.MemberID)
	r.PlanName = collapseWhitespace(r.PlanName)
	r.TransactionType = StandardizeTransactionType(r.TransactionType)

	switch {
	case r.CommissionAmount == nil:
		// A missing amount on a non-chargeback row is a defect; the row is
		// retained at zero either way.
		zero := 0.0
		r.CommissionAmount = &zero
		if !IsChargeback(r.TransactionType) {
			defects++
			logger.L.Warn("Missing commission amount retained at zero",
				"carrier", r.CarrierName, "agent", r.AgentName)
		}
	case IsChargeback(r.TransactionType) && *r.CommissionAmount > 0:
		// Chargebacks subtract; a positive raw amount means the carrier
		// exported the reversal unsigned.
		flipped := utils.RoundCurrency(-*r.CommissionAmount)
		r.CommissionAmount = &flipped
		defects++
	default:
		rounded := utils.RoundCurrency(*r.CommissionAmount)
		r.CommissionAmount = &rounded
	}

	return defects
}
