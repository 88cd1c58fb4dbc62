package goweft

// SourceRow is one immutable input row of a document.
type SourceRow struct {
	Row     int    // Row index in the source document
	Content string // Raw cell content, plain text or markup
	// Verbatim marks untranslatable rows (e.g. a URL-typed field).
	// Nothing is extracted from them; the merge step copies the source
	// value into every target column unconditionally.
	Verbatim bool
}

// Segment is one minimal unit of translatable text extracted from a row.
type Segment struct {
	ID   string // Allocator-assigned id, e.g. "T7"
	Row  int    // Row the segment was extracted from
	Text string // Extracted text, whitespace-trimmed
}

// Template is a row's original content with each segment's text replaced
// by its {T<n>} placeholder. Everything else (markup, whitespace,
// protected terms) is byte-identical to the source content.
type Template struct {
	Row  int
	Text string
}

// GlossaryEntry maps language codes to the literal rendering of one
// concept (e.g. {"en": "invoice", "fr_FR": "facture"}).
type GlossaryEntry struct {
	Terms map[string]string
}

// MemoryUnit is one stored translation in a translation-memory store.
type MemoryUnit struct {
	SourceText string `json:"source_text"`
	TargetLang string `json:"target_lang"`
	TargetText string `json:"target_text"`
}

// Match is one scored translation-memory candidate.
type Match struct {
	Unit  MemoryUnit
	Score int // Similarity in [0,100]
}

// Occurrence locates one appearance of a unique string.
type Occurrence struct {
	Doc       string // Document identifier
	Row       int    // Row index within the document
	SegmentID string // Segment id within that document's pass
}

// UniqueString is one canonical extracted text plus every place it occurs.
type UniqueString struct {
	Text        string
	Hash        string
	Occurrences []Occurrence
}

// Stats summarizes one TranslateUnique pass.
type Stats struct {
	Unique       int      // Unique strings considered
	Occurrences  int      // Total occurrences those strings cover
	GlossaryHits int      // Resolved by exact glossary match, no provider call
	MemoryHits   int      // Resolved by translation memory at/above auto-apply
	Translated   int      // Sent to and returned by the provider
	Failed       int      // Provider failures, sentinel embedded
	Skipped      int      // No provider configured, left untranslated
	Warnings     []string // Non-fatal diagnostics
}

// FailedSentinel prefixes translations that could not be produced. The
// sentinel is embedded at the correct position so a failure stays locally
// visible and reviewable instead of corrupting or misaligning the document.
const FailedSentinel = "[[MT-FAILED]]"

// FailureSentinel returns the sentinel value for a string whose
// translation failed, keeping the original text visible.
func FailureSentinel(text string) string {
	return FailedSentinel + " " + text
}

// IgnoredTags contains markup tags whose content is never extracted.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
