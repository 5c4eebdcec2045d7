package core

import "fmt"

// Source identifies the reporting standard a citation refers to.
type Source string

const (
	// SourceDisclosureGuide refers to the SSE sustainability disclosure guide.
	SourceDisclosureGuide Source = "SSE"
	// SourceGRI refers to the GRI universal / topic standards.
	SourceGRI Source = "GRI"
)

// Citation is an immutable reference to a specific clause of a reporting
// standard. Citations are value types; treat them as read-only once produced.
type Citation struct {
	// Source is the standard the clause belongs to.
	Source Source `json:"source"`
	// Clause is the clause or indicator identifier within the standard (e.g. "2.1", "305").
	Clause string `json:"clause"`
	// Text is the human-readable clause description.
	Text string `json:"text"`
}

// String renders the citation in the conventional "SSE 2.1 - ..." form used
// inside draft report text.
func (c Citation) String() string {
	return fmt.Sprintf("%s %s - %s", c.Source, c.Clause, c.Text)
}

// MergeCitations returns the order-preserving union of the given citation
// lists. Duplicates (same source + clause) are dropped, keeping the first
// occurrence. The result is always non-nil.
func MergeCitations(lists ...[]Citation) []Citation {
	merged := []Citation{}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, c := range list {
			key := string(c.Source) + " " + c.Clause
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, c)
		}
	}
	return merged
}
