package domain

// PDFDocument is one extracted PDF within a run.
// It is created once per PDF (or loaded from the extraction cache) and
// is immutable afterwards.
type PDFDocument struct {
	// ID is the identifier unique within a run, the PDF file name.
	ID string

	// Text is the full extracted text, pages concatenated in document
	// order and separated by newlines. Page boundaries are not
	// preserved as structure.
	Text string
}

// TextTable maps PDF identifiers to extracted full text.
// It is built once during the extraction phase and treated as a
// read-only snapshot by every matching task.
type TextTable map[string]string

// Record is one structured record file and the candidate snippets it
// carries. Empty snippets are dropped at load time, so Snippets holds
// only non-empty text.
type Record struct {
	// ID is the source file path of the record.
	ID string

	// Snippets are the original-text fragments believed to originate
	// from some PDF, in file order.
	Snippets []string
}
