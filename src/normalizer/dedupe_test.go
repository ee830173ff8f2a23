package normalizer

import (
	"testing"

	"github.com/username/commrec/backend/src/models"
)

func TestDedupeMergesAfterMemberNameStandardization(t *testing.T) {
	// Same commission event reported twice with inconsistent member name
	// casing and no member id. Standardization makes the keys collide.
	in := []models.Record{
		record(func(r *models.Record) { r.MemberID = ""; r.MemberName = "JOHN DOE" }),
		record(func(r *models.Record) { r.MemberID = ""; r.MemberName = "John Doe" }),
	}

	out, stats := New().Normalize(in)
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if stats.DuplicateCount != 1 {
		t.Errorf("DuplicateCount = %d, want 1", stats.DuplicateCount)
	}
}

func TestDedupeKeepsRecordsDifferingOnlyInAmount(t *testing.T) {
	in := []models.Record{
		record(func(r *models.Record) { r.CommissionAmount = amt(100) }),
		record(func(r *models.Record) { r.CommissionAmount = amt(100.50) }),
	}

	out, stats := New().Normalize(in)
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2 distinct transactions", len(out))
	}
	if stats.DuplicateCount != 0 {
		t.Errorf("DuplicateCount = %d, want 0", stats.DuplicateCount)
	}
}

func TestDedupeSurvivorHasMostOptionalFields(t *testing.T) {
	sparse := record()
	rich := record(func(r *models.Record) {
		r.AgencyName = "Bright Path"
		r.MemberName = "John Doe"
		r.EnrollmentDate = date("2024-01-01")
	})

	out, _ := New().Normalize([]models.Record{sparse, rich})
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].AgencyName != "Bright Path" {
		t.Errorf("survivor lost optional fields: %+v", out[0])
	}
}

func TestDedupeSurvivorTieBreaksOnEarliestProcessedDate(t *testing.T) {
	later := record(func(r *models.Record) { r.ProcessedDate = date("2024-06-20") })
	earlier := record(func(r *models.Record) { r.ProcessedDate = date("2024-06-10") })

	out, _ := New().Normalize([]models.Record{later, earlier})
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if got := out[0].ProcessedDate.Format("2006-01-02"); got != "2024-06-10" {
		t.Errorf("survivor ProcessedDate = %s, want 2024-06-10", got)
	}
}

func TestDedupePrefersDatedOverUndatedOnEqualFieldCount(t *testing.T) {
	undated := record(func(r *models.Record) { r.AgencyName = "Bright Path" })
	dated := record(func(r *models.Record) { r.ProcessedDate = date("2024-06-10") })

	out, _ := New().Normalize([]models.Record{undated, dated})
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].ProcessedDate == nil {
		t.Error("survivor has no ProcessedDate, want the dated record")
	}
}

func TestDedupePreservesInputOrderOfSurvivors(t *testing.T) {
	in := []models.Record{
		record(func(r *models.Record) { r.MemberID = "M300" }),
		record(func(r *models.Record) { r.MemberID = "M100" }),
		record(func(r *models.Record) { r.MemberID = "M300" }), // dup of first
		record(func(r *models.Record) { r.MemberID = "M200" }),
	}

	out, _ := New().Normalize(in)
	want := []string{"M300", "M100", "M200"}
	if len(out) != len(want) {
		t.Fatalf("got %d records, want %d", len(out), len(want))
	}
	for i, id := range want {
		if out[i].MemberID != id {
			t.Errorf("record %d MemberID = %q, want %q", i, out[i].MemberID, id)
		}
	}
}

func TestDedupeIsScopedToCarrierAndPeriod(t *testing.T) {
	in := []models.Record{
		record(),
		record(func(r *models.Record) { r.CarrierName = "Emblem" }),
		record(func(r *models.Record) { r.CommissionPeriod = "2024-07" }),
	}

	out, stats := New().Normalize(in)
	if len(out) != 3 {
		t.Errorf("got %d records, want 3", len(out))
	}
	if stats.DuplicateCount != 0 {
		t.Errorf("DuplicateCount = %d, want 0", stats.DuplicateCount)
	}
}
