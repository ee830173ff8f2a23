package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownAgent is the sentinel for agent fields that survive parsing but
// cannot be cleaned into a usable name.
const UnknownAgent = "Unknown"

var (
	trailingCodeRe = regexp.MustCompile(`\s*\([A-Za-z0-9-]+\)\s*$`)
	punctuationRe  = regexp.MustCompile(`[^\pL\pN\s'-]`)
	memberIDRe     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// noiseSuffixes are tokens stripped from the end of a name: business forms,
// generational suffixes and credential letters that carriers append
// inconsistently. Compared lowercase with trailing periods removed.
var noiseSuffixes = map[string]bool{
	"inc": true, "incorporated": true,
	"corp": true, "corporation": true,
	"llc": true, "ltd": true, "limited": true,
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
	"cpa": true, "cfp": true, "clu": true, "chfc": true,
}

// CleanName standardizes an agent or agency name: trim, drop one trailing
// parenthesized code, remove punctuation other than hyphen and apostrophe,
// collapse whitespace, strip noise suffix tokens, then title-case. Returns
// "" when nothing usable remains.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = trailingCodeRe.ReplaceAllString(name, "")
	name = punctuationRe.ReplaceAllString(name, " ")

	words := strings.Fields(name)
	for len(words) > 1 {
		last := strings.ToLower(strings.Trim(words[len(words)-1], "."))
		if !noiseSuffixes[last] {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}

	// A cases.Caser is stateful and not safe for concurrent use, so build
	// one per call instead of sharing a package-level instance.
	return cases.Title(language.AmericanEnglish).String(strings.Join(words, " "))
}

// CleanAgentName applies CleanName and falls back to the Unknown sentinel,
// keeping agent_name non-empty after normalization.
func CleanAgentName(name string) string {
	if cleaned := CleanName(name); cleaned != "" {
		return cleaned
	}
	return UnknownAgent
}

// CleanMemberID strips everything but letters and digits.
func CleanMemberID(id string) string {
	return memberIDRe.ReplaceAllString(strings.TrimSpace(id), "")
}

// collapseWhitespace tidies display strings without reshaping them.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
