package domain

// MatchScore accumulates per-PDF hit counts for a single record.
// A hit is one snippet whose partial similarity against a PDF's text
// exceeds the configured threshold. Scores are scoped to one record's
// matching operation and discarded after best-candidate selection.
type MatchScore map[string]int

// Evidence is one snippet pair supporting a match: the record snippet
// that hit the best PDF and a bounded excerpt of the PDF text around
// the located occurrence.
type Evidence struct {
	// Snippet is the record's original text fragment.
	Snippet string

	// Excerpt is a window of the matched PDF's text surrounding the
	// snippet occurrence, or a generic leading excerpt when the fuzzy
	// hit has no exact location. Newlines are flattened to spaces.
	Excerpt string
}

// MatchResult is the outcome of matching one record against the PDF
// text table. A record with zero qualifying hits yields a result with
// an empty BestPDF, zero count and no evidence — a legitimate outcome,
// not an error.
type MatchResult struct {
	// RecordID is the record's source file path.
	RecordID string

	// BestPDF is the identifier of the selected PDF, or empty when no
	// PDF received any hit.
	BestPDF string

	// MatchCount is the number of snippets that hit BestPDF.
	MatchCount int

	// Evidence holds the snippet pairs supporting the match, in
	// snippet order.
	Evidence []Evidence
}

// Matched reports whether the record was attributed to a PDF.
func (r MatchResult) Matched() bool {
	return r.BestPDF != ""
}
