// Package segment splits plain or markup content into extractable text
// units and a reconstructable template.
package segment

import (
	"regexp"
	"strings"

	"github.com/ZaguanLabs/goweft"
)

// markupPattern probes for tag-like syntax. Loose on purpose: content
// that merely resembles markup still tokenizes safely.
var markupPattern = regexp.MustCompile(`<[a-zA-Z!/][^>]*>`)

// Segmenter extracts translatable segments from row content.
type Segmenter struct {
	ignoredTags map[string]bool
}

// New creates a segmenter with the default ignored tags.
func New() *Segmenter {
	return &Segmenter{ignoredTags: goweft.IgnoredTags}
}

// NewWithIgnoredTags creates a segmenter with custom ignored tags.
func NewWithIgnoredTags(tags []string) *Segmenter {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &Segmenter{ignoredTags: ignored}
}

// Extract splits content into segments and a template. Segment ids come
// from the caller-owned allocator, assigned in document order (row text,
// then node, then unmasked run), so identical content with an identical
// term list and a freshly reset allocator always yields identical ids
// and an identical template.
//
// Plain content yields one segment per non-empty unmasked run. Markup
// content is parsed into a tree and every text-bearing leaf is split
// into masked and unmasked runs; leading and trailing whitespace stays
// verbatim in the template and masked runs become literal text.
// Unparsable markup degrades to zero extraction: the template equals
// the original content and a warning is returned. Extract never fails.
//
// Segments carry no row index; the caller assigns it.
func (s *Segmenter) Extract(content string, masker *goweft.Masker, alloc *goweft.IDAllocator) (string, []goweft.Segment, []string) {
	if masker == nil {
		masker = goweft.NewMasker(nil)
	}

	var tmpl strings.Builder
	var segs []goweft.Segment

	if !IsMarkup(content) {
		s.emitText(content, masker, alloc, &tmpl, &segs)
		return tmpl.String(), segs, nil
	}

	root, ok := parseTree(content)
	if !ok {
		return content, nil, []string{"unparsable markup: extraction skipped"}
	}

	visit(root, s.ignoredTags,
		func(raw string) { tmpl.WriteString(raw) },
		func(raw string, ignored bool) {
			if ignored {
				tmpl.WriteString(raw)
				return
			}
			s.emitText(raw, masker, alloc, &tmpl, &segs)
		})

	return tmpl.String(), segs, nil
}

// IsMarkup reports whether content contains tag-like syntax.
func IsMarkup(content string) bool {
	return markupPattern.MatchString(content)
}

// whitespace is the cutset split around segments; it must match the
// trimming applied to segment text so leading + text + trailing always
// reconstructs the original run.
const whitespace = " \t\n\r"

// emitText masks one text run, splits it into protected and unprotected
// spans, and emits placeholders for each non-empty unprotected span.
func (s *Segmenter) emitText(text string, masker *goweft.Masker, alloc *goweft.IDAllocator, tmpl *strings.Builder, segs *[]goweft.Segment) {
	masked := masker.Mask(text)
	for _, run := range masker.SplitRuns(masked) {
		if run.Protected {
			tmpl.WriteString(run.Text)
			continue
		}
		core := strings.Trim(run.Text, whitespace)
		if core == "" {
			tmpl.WriteString(run.Text)
			continue
		}
		leading := run.Text[:len(run.Text)-len(strings.TrimLeft(run.Text, whitespace))]
		trailing := run.Text[len(leading)+len(core):]

		id := alloc.Next()
		*segs = append(*segs, goweft.Segment{ID: id, Text: core})

		tmpl.WriteString(leading)
		tmpl.WriteString(goweft.Placeholder(id))
		tmpl.WriteString(trailing)
	}
}

// Verify Segmenter implements the engine interface.
var _ goweft.Segmenter = (*Segmenter)(nil)
