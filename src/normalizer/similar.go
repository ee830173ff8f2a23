package normalizer

import (
	"sort"
	"strings"

	"github.com/username/commrec/backend/src/models"
)

// DefaultSimilarityThreshold matches the audit sensitivity used for the
// near-duplicate agent listing.
const DefaultSimilarityThreshold = 0.85

// SimilarAgentPairs lists standardized agent names that look like the same
// person across the normalized output. It is a read-only audit: merging
// near-miss names automatically is deliberately out of scope, so callers
// only ever report these pairs.
func SimilarAgentPairs(records []models.Record, threshold float64) []models.SimilarAgentPair {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, r := range records {
		if r.AgentName == UnknownAgent || seen[r.AgentName] {
			continue
		}
		seen[r.AgentName] = true
		names = append(names, r.AgentName)
	}
	sort.Strings(names)

	var pairs []models.SimilarAgentPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			sim := nameSimilarity(names[i], names[j])
			if sim >= threshold && sim < 1.0 {
				pairs = append(pairs, models.SimilarAgentPair{
					NameA:      names[i],
					NameB:      names[j],
					Similarity: sim,
				})
			}
		}
	}
	return pairs
}

// nameSimilarity is a longest-common-subsequence ratio over the lowercased
// names: 2*LCS / (len(a)+len(b)), 1.0 for identical strings.
func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
