package models

// TopPerformer is one row of the agent ranking.
type TopPerformer struct {
	AgentName       string  `json:"agent_name"`
	TotalCommission float64 `json:"total_commission"`
	AvgCommission   float64 `json:"avg_commission"`
	RecordCount     int     `json:"record_count"`
}

// CarrierSummary aggregates the normalized output per carrier.
type CarrierSummary struct {
	CarrierName     string  `json:"carrier_name"`
	RecordCount     int     `json:"record_count"`
	TotalCommission float64 `json:"total_commission"`
	UniqueAgents    int     `json:"unique_agents"`
}

// PeriodSummary is the per-period rollup used by the report endpoints.
type PeriodSummary struct {
	Period          string   `json:"period"`
	TotalCommission float64  `json:"total_commission"`
	RecordCount     int      `json:"record_count"`
	UniqueAgents    int      `json:"unique_agents"`
	UniqueMembers   int      `json:"unique_members"`
	Carriers        []string `json:"carriers"`
}

// SimilarAgentPair is a read-only audit finding: two standardized agent
// names that look like the same person but are never merged automatically.
type SimilarAgentPair struct {
	NameA      string  `json:"name_a"`
	NameB      string  `json:"name_b"`
	Similarity float64 `json:"similarity"`
}
