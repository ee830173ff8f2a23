package normalizer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/utils"
)

// DedupKey derives the composite identity of a commission event. member_id
// is the strongest natural key but carrier-optional, so the member name and
// the policy/plan fallbacks approximate identity when it is absent. Records
// differing only in commission_amount stay distinct transactions.
func DedupKey(r models.Record) string {
	member := r.MemberID
	if member == "" {
		member = strings.ToLower(collapseWhitespace(r.MemberName))
	}
	policy := r.PolicyNumber
	if policy == "" {
		policy = r.PlanName + "@" + utils.FormatDate(r.EffectiveDate)
	}
	amount := ""
	if r.CommissionAmount != nil {
		amount = strconv.FormatFloat(*r.CommissionAmount, 'f', 2, 64)
	}
	return strings.Join([]string{
		r.CarrierName,
		r.CommissionPeriod,
		r.AgentName,
		member,
		policy,
		r.TransactionType,
		amount,
	}, "\x1f")
}

type candidate struct {
	rec models.Record
	pos int // position in the merged input
}

// dedupe groups records by dedup key and keeps one survivor per group:
// most populated optional fields, then earliest processed date, then stable
// input order. Returns survivors in input order plus the removal count.
func dedupe(records []models.Record) ([]models.Record, int) {
	groups := make(map[string][]candidate, len(records))
	order := make([]string, 0, len(records))
	for i, rec := range records {
		key := DedupKey(rec)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], candidate{rec: rec, pos: i})
	}

	survivors := make([]candidate, 0, len(order))
	removed := 0
	for _, key := range order {
		group := groups[key]
		best := group[0]
		for _, c := range group[1:] {
			if betterSurvivor(c, best) {
				best = c
			}
		}
		removed += len(group) - 1
		survivors = append(survivors, best)
	}

	sort.Slice(survivors, func(i, j int) bool { return survivors[i].pos < survivors[j].pos })
	out := make([]models.Record, len(survivors))
	for i, c := range survivors {
		out[i] = c.rec
	}
	return out, removed
}

// betterSurvivor reports whether a should replace b as the group survivor.
func betterSurvivor(a, b candidate) bool {
	an, bn := optionalFieldCount(a.rec), optionalFieldCount(b.rec)
	if an != bn {
		return an > bn
	}
	ap, bp := a.rec.ProcessedDate, b.rec.ProcessedDate
	switch {
	case ap != nil && bp == nil:
		return true
	case ap == nil && bp != nil:
		return false
	case ap != nil && bp != nil && !ap.Equal(*bp):
		return ap.Before(*bp)
	}
	return a.pos < b.pos
}

func optionalFieldCount(r models.Record) int {
	count := 0
	for _, present := range []bool{
		r.AgencyName != "",
		r.MemberID != "",
		r.MemberName != "",
		r.PlanName != "",
		r.PolicyNumber != "",
		r.EnrollmentDate != nil,
		r.DisenrollmentDate != nil,
		r.EffectiveDate != nil,
		r.ProcessedDate != nil,
	} {
		if present {
			count++
		}
	}
	return count
}
