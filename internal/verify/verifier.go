// Package verify scores extracted OD document text against fixed keyword sets.
//
// This is a cheap, auditable gate that flags obviously thin uploads for closer
// admin review. It is not a classifier and never blocks a submission; the
// outcome is stored on the request as a hint for the reviewer.
package verify

import "strings"

// Activity categories in canonical priority order. Ties between categories
// resolve to the earlier entry, so the order must not change.
var categoryOrder = []string{"sports", "technical", "cultural", "general"}

// Policy constants. The keyword lists and the threshold are fixed policy,
// not tuned values; change them only on an explicit policy decision.
var categoryKeywords = map[string][]string{
	"sports":    {"sports", "tournament", "match", "game", "practice", "coach", "team", "athlete"},
	"technical": {"hackathon", "workshop", "symposium", "technical", "coding", "programming", "project"},
	"cultural":  {"cultural", "fest", "music", "dance", "drama", "debate", "competition"},
	"general":   {"certificate", "participation", "event", "activity", "program", "college", "institute"},
}

var verificationKeywords = []string{
	"on duty", "od", "permission", "authorized", "approved", "coordinator",
	"faculty", "head", "department", "signature", "stamp", "official",
}

const validThreshold = 3

// Result is the outcome of a verification pass.
type Result struct {
	Valid    bool
	Message  string
	Category string // empty when Valid is false
}

// Check scores text against the category and verification keyword sets.
// Each keyword counts at most once no matter how often it repeats. The text
// may be an extraction diagnostic ("OCR Error: ..."); it then simply scores
// as insufficient evidence.
func Check(text string) Result {
	lower := strings.ToLower(text)

	counts := make(map[string]int, len(categoryOrder))
	total := 0
	for _, category := range categoryOrder {
		n := countPresent(lower, categoryKeywords[category])
		counts[category] = n
		total += n
	}
	total += countPresent(lower, verificationKeywords)

	// highest count wins, first category in canonical order on ties
	detected := categoryOrder[0]
	for _, category := range categoryOrder[1:] {
		if counts[category] > counts[detected] {
			detected = category
		}
	}

	if total >= validThreshold {
		return Result{
			Valid:    true,
			Message:  "Valid " + capitalize(detected) + " activity detected",
			Category: detected,
		}
	}
	return Result{
		Valid:   false,
		Message: "Insufficient evidence of valid extracurricular activity",
	}
}

// countPresent counts how many keywords occur in text at least once.
func countPresent(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
