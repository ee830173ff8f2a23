package normalizer

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and collapses whitespace", "  JOHN   SMITH  ", "John Smith"},
		{"title cases lowercase input", "maria santos", "Maria Santos"},
		{"strips trailing parenthesized code", "Jane Roe (E4421)", "Jane Roe"},
		{"strips generational suffix", "Robert Miller Jr.", "Robert Miller"},
		{"strips credential suffix", "Ann Chu CFP", "Ann Chu"},
		{"strips business suffix", "Acme Insurance LLC", "Acme Insurance"},
		{"strips stacked suffixes", "Delta Care Corp LLC", "Delta Care"},
		{"keeps hyphenated names", "mary-jane watson", "Mary-Jane Watson"},
		{"drops stray punctuation", "Smith, John", "Smith John"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.input); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	inputs := []string{"  JOHN   SMITH Jr ", "Acme Insurance LLC", "Jane Roe (E4421)", "mary-jane watson"}
	for _, input := range inputs {
		once := CleanName(input)
		twice := CleanName(once)
		if once != twice {
			t.Errorf("CleanName not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}

func TestCleanAgentNameFallsBackToUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "(X1)"} {
		if got := CleanAgentName(input); got != UnknownAgent {
			t.Errorf("CleanAgentName(%q) = %q, want %q", input, got, UnknownAgent)
		}
	}
	if got := CleanAgentName("jo ann lee"); got != "Jo Ann Lee" {
		t.Errorf("CleanAgentName(jo ann lee) = %q, want Jo Ann Lee", got)
	}
}

func TestCleanMemberID(t *testing.T) {
	tests := []struct{ input, want string }{
		{" 1EG4-TE5-MK72 ", "1EG4TE5MK72"},
		{"A B C", "ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanMemberID(tt.input); got != tt.want {
			t.Errorf("CleanMemberID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStandardizeTransactionType(t *testing.T) {
	tests := []struct{ input, want string }{
		{"new", "New"},
		{"NEW-BUSINESS", "New"},
		{"Renew", "Renewal"},
		{"renewal", "Renewal"},
		{"chargeback", "Chargeback"},
		{"Reversal", "Chargeback"},
		{"adj", "Adjustment"},
		{"commission", "Commission"},
		{"something odd", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		if got := StandardizeTransactionType(tt.input); got != tt.want {
			t.Errorf("StandardizeTransactionType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// Canonical values survive a second pass unchanged.
	for _, canonical := range []string{"New", "Renewal", "Chargeback", "Cancellation", "Termination", "Adjustment", "Bonus", "Commission", "Correction", "Other"} {
		if got := StandardizeTransactionType(canonical); got != canonical {
			t.Errorf("StandardizeTransactionType(%q) = %q, not stable", canonical, got)
		}
	}
}
