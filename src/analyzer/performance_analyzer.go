package analyzer

import (
	"sort"

	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/utils"
)

// DefaultTopN is the top-performer list length when the caller does not ask
// for a specific one.
const DefaultTopN = 10

// PerformanceAnalyzer computes aggregates over the post-normalization record
// set. It never mutates records and never re-derives normalization.
type PerformanceAnalyzer struct{}

func New() *PerformanceAnalyzer { return &PerformanceAnalyzer{} }

// TopPerformers ranks agents by summed commission amount (chargebacks carry
// negative amounts and subtract), descending, ties broken by agent name
// ascending for determinism. n <= 0 selects DefaultTopN.
func (a *PerformanceAnalyzer) TopPerformers(records []models.Record, n int) []models.TopPerformer {
	if n <= 0 {
		n = DefaultTopN
	}

	totals := make(map[string]*models.TopPerformer)
	for _, r := range records {
		p, ok := totals[r.AgentName]
		if !ok {
			p = &models.TopPerformer{AgentName: r.AgentName}
			totals[r.AgentName] = p
		}
		p.TotalCommission += r.Amount()
		p.RecordCount++
	}

	ranked := make([]models.TopPerformer, 0, len(totals))
	for _, p := range totals {
		p.TotalCommission = utils.RoundCurrency(p.TotalCommission)
		if p.RecordCount > 0 {
			p.AvgCommission = utils.RoundCurrency(p.TotalCommission / float64(p.RecordCount))
		}
		ranked = append(ranked, *p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalCommission != ranked[j].TotalCommission {
			return ranked[i].TotalCommission > ranked[j].TotalCommission
		}
		return ranked[i].AgentName < ranked[j].AgentName
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CarrierSummaries reports record count, commission total and distinct agent
// count per carrier, sorted by carrier name. Summing the totals across all
// carriers equals the commission total of the full normalized output.
func (a *PerformanceAnalyzer) CarrierSummaries(records []models.Record) []models.CarrierSummary {
	type acc struct {
		summary models.CarrierSummary
		agents  map[string]bool
	}
	byCarrier := make(map[string]*acc)
	for _, r := range records {
		c, ok := byCarrier[r.CarrierName]
		if !ok {
			c = &acc{summary: models.CarrierSummary{CarrierName: r.CarrierName}, agents: make(map[string]bool)}
			byCarrier[r.CarrierName] = c
		}
		c.summary.RecordCount++
		c.summary.TotalCommission += r.Amount()
		c.agents[r.AgentName] = true
	}

	summaries := make([]models.CarrierSummary, 0, len(byCarrier))
	for _, c := range byCarrier {
		c.summary.TotalCommission = utils.RoundCurrency(c.summary.TotalCommission)
		c.summary.UniqueAgents = len(c.agents)
		summaries = append(summaries, c.summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CarrierName < summaries[j].CarrierName
	})
	return summaries
}

// PeriodSummary rolls up one commission period across all carriers.
func (a *PerformanceAnalyzer) PeriodSummary(records []models.Record, period string) models.PeriodSummary {
	summary := models.PeriodSummary{Period: period, Carriers: []string{}}
	agents := make(map[string]bool)
	members := make(map[string]bool)
	carriers := make(map[string]bool)

	for _, r := range records {
		if r.CommissionPeriod != period {
			continue
		}
		summary.RecordCount++
		summary.TotalCommission += r.Amount()
		agents[r.AgentName] = true
		if r.MemberID != "" {
			members[r.MemberID] = true
		}
		carriers[r.CarrierName] = true
	}

	summary.TotalCommission = utils.RoundCurrency(summary.TotalCommission)
	summary.UniqueAgents = len(agents)
	summary.UniqueMembers = len(members)
	for c := range carriers {
		summary.Carriers = append(summary.Carriers, c)
	}
	sort.Strings(summary.Carriers)
	return summary
}
