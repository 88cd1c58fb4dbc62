package goweft

import (
	"regexp"
	"strings"
)

// Do-not-translate spans are enveloped in STX/ETX control bytes. The
// markers cannot occur in ordinary document text, survive markup
// tokenization as plain text bytes, and are stripped back to the literal
// term before anything leaves the engine.
const (
	maskStart     = "\x02"
	maskEnd       = "\x03"
	maskStartByte = 0x02
	maskEndByte   = 0x03
)

// tokenPattern matches brace-delimited placeholder tokens such as
// "{name}" that are auto-protected from translation.
var tokenPattern = regexp.MustCompile(`\{[^{}]+\}`)

// Run is one span of text after masking: either a protected literal or
// an unmasked stretch eligible for extraction.
type Run struct {
	Text      string
	Protected bool
}

// Masker protects do-not-translate terms by wrapping their occurrences
// in an internal marker envelope. All methods are pure transforms.
type Masker struct {
	terms []string
}

// NewMasker creates a masker from an ordered term list. Terms are
// deduplicated case-insensitively, first occurrence kept, so overlapping
// protection markers are never nested. Empty terms are dropped.
func NewMasker(terms []string) *Masker {
	m := &Masker{}
	seen := make(map[string]bool)
	for _, t := range terms {
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		m.terms = append(m.terms, t)
	}
	return m
}

// Terms returns the deduplicated term list in order.
func (m *Masker) Terms() []string {
	return m.terms
}

// WithAutoDetected returns a masker whose term list is extended with
// every brace-delimited token found in content, e.g. "{name}". The
// receiver is unchanged; auto-detected tokens dedup against existing
// terms case-insensitively.
func (m *Masker) WithAutoDetected(content string) *Masker {
	tokens := tokenPattern.FindAllString(content, -1)
	if len(tokens) == 0 {
		return m
	}
	combined := make([]string, 0, len(m.terms)+len(tokens))
	combined = append(combined, m.terms...)
	combined = append(combined, tokens...)
	return NewMasker(combined)
}

// Mask wraps each literal occurrence of every term in the marker
// envelope. Matching is case-insensitive; the original casing of each
// occurrence is preserved. Text already inside a marker envelope is
// never masked again.
func (m *Masker) Mask(content string) string {
	out := content
	for _, term := range m.terms {
		out = maskOutside(out, term)
	}
	return out
}

// Unmask strips every marker envelope, restoring the literal terms.
func (m *Masker) Unmask(content string) string {
	return strings.NewReplacer(maskStart, "", maskEnd, "").Replace(content)
}

// SplitRuns splits masked content into protected and unprotected runs in
// document order. Protected runs carry the literal term with markers
// already stripped. Adjacent unprotected runs are never merged with
// protected ones, so callers see exact span boundaries.
func (m *Masker) SplitRuns(masked string) []Run {
	var runs []Run
	s := masked
	for len(s) > 0 {
		start := strings.IndexByte(s, maskStartByte)
		if start < 0 {
			runs = append(runs, Run{Text: s})
			break
		}
		if start > 0 {
			runs = append(runs, Run{Text: s[:start]})
		}
		rest := s[start+1:]
		end := strings.IndexByte(rest, maskEndByte)
		if end < 0 {
			// Unterminated envelope: treat the remainder as protected.
			runs = append(runs, Run{Text: rest, Protected: true})
			break
		}
		runs = append(runs, Run{Text: rest[:end], Protected: true})
		s = rest[end+1:]
	}
	return runs
}

// maskOutside masks occurrences of term in s, skipping spans that are
// already inside a marker envelope.
func maskOutside(s, term string) string {
	var b strings.Builder
	for len(s) > 0 {
		start := strings.IndexByte(s, maskStartByte)
		if start < 0 {
			b.WriteString(maskAll(s, term))
			break
		}
		b.WriteString(maskAll(s[:start], term))
		rest := s[start:]
		end := strings.IndexByte(rest[1:], maskEndByte)
		if end < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:end+2])
		s = rest[end+2:]
	}
	return b.String()
}

// maskAll wraps every case-insensitive occurrence of term in s.
func maskAll(s, term string) string {
	if term == "" {
		return s
	}
	var b strings.Builder
	for {
		i := indexFold(s, term)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		b.WriteString(maskStart)
		b.WriteString(s[i : i+len(term)])
		b.WriteString(maskEnd)
		s = s[i+len(term):]
	}
	return b.String()
}

// indexFold returns the byte index of the first case-insensitive
// occurrence of substr in s, or -1.
func indexFold(s, substr string) int {
	n := len(substr)
	if n == 0 || n > len(s) {
		return -1
	}
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
