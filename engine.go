package goweft

import (
	"context"
	"fmt"
)

// Provider is the interface for machine-translation backends. The core
// never calls one directly except through TranslateUnique, and only for
// strings the glossary and translation memory could not resolve.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) ([]string, error)
}

// TranslateRequest contains the parameters for a provider call.
type TranslateRequest struct {
	Texts         []string
	SourceLang    string
	TargetLang    string
	ExcludedTerms []string // Terms the provider must pass through unchanged
	Context       string   // Optional global disambiguation context
}

// Segmenter is the interface for content segmentation. Extract returns
// the template, the extracted segments (row unassigned), and any
// non-fatal warnings; it never fails.
type Segmenter interface {
	Extract(content string, masker *Masker, alloc *IDAllocator) (template string, segments []Segment, warnings []string)
}

// MemoryMatcher is the interface for translation-memory fuzzy lookup.
type MemoryMatcher interface {
	Match(query, targetLang string, threshold int) ([]Match, error)
}

// Extraction is the result of segmenting one document.
type Extraction struct {
	Doc       string
	Segments  []Segment
	Templates []Template
	Warnings  []string

	segmentIDs map[int][]string // row → ids, in allocation order
	verbatim   map[int]bool
}

// Plans converts the extraction into per-row merge plans, carrying each
// row's verbatim flag through to the merge step.
func (x *Extraction) Plans() []RowPlan {
	plans := make([]RowPlan, 0, len(x.Templates))
	for _, t := range x.Templates {
		plans = append(plans, RowPlan{
			Row:        t.Row,
			Template:   t.Text,
			SegmentIDs: x.segmentIDs[t.Row],
			Verbatim:   x.verbatim[t.Row],
		})
	}
	return plans
}

// Engine ties the masker, segmenter, deduplicator, glossary, translation
// memory, and provider together. It holds no mutable state of its own:
// every method is a pure computation over its inputs plus the caller's
// allocator, so one Engine is safe to use from many goroutines.
type Engine struct {
	sourceLang         string
	provider           Provider
	segmenter          Segmenter
	glossary           *Glossary
	memory             MemoryMatcher
	fuzzyThreshold     int
	autoApplyThreshold int
	dntTerms           []string
	context            string
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithProvider sets the machine-translation backend.
func WithProvider(p Provider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithSegmenter sets the content segmenter.
func WithSegmenter(s Segmenter) Option {
	return func(e *Engine) {
		e.segmenter = s
	}
}

// WithGlossary sets the glossary used for exact-match short-circuiting
// and embedded term substitution.
func WithGlossary(g *Glossary) Option {
	return func(e *Engine) {
		e.glossary = g
	}
}

// WithMemory sets the translation-memory matcher. fuzzyThreshold is the
// minimum score a candidate must reach to be considered at all;
// autoApplyThreshold is the minimum score at which the top match is used
// without review.
func WithMemory(m MemoryMatcher, fuzzyThreshold, autoApplyThreshold int) Option {
	return func(e *Engine) {
		e.memory = m
		e.fuzzyThreshold = fuzzyThreshold
		e.autoApplyThreshold = autoApplyThreshold
	}
}

// WithDNTTerms sets the ordered do-not-translate term list.
func WithDNTTerms(terms []string) Option {
	return func(e *Engine) {
		e.dntTerms = terms
	}
}

// WithContext sets a global disambiguation context passed to the provider.
func WithContext(ctx string) Option {
	return func(e *Engine) {
		e.context = ctx
	}
}

// New creates an Engine for documents in the given source language.
func New(sourceLang string, opts ...Option) *Engine {
	e := &Engine{
		sourceLang:         sourceLang,
		fuzzyThreshold:     70,
		autoApplyThreshold: 100,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SourceLang returns the configured source language.
func (e *Engine) SourceLang() string {
	return e.sourceLang
}

// DNTTerms returns the configured do-not-translate terms.
func (e *Engine) DNTTerms() []string {
	return e.dntTerms
}

// ExtractDocument segments every row of one document using the
// caller-owned allocator. Each row's masker is extended with the
// brace-delimited tokens auto-detected in that row's content.
func (e *Engine) ExtractDocument(doc string, rows []SourceRow, alloc *IDAllocator) (*Extraction, error) {
	if e.segmenter == nil {
		return nil, &SegmentError{Message: "no segmenter registered"}
	}
	if alloc == nil {
		return nil, &SegmentError{Message: "nil id allocator"}
	}

	base := NewMasker(e.dntTerms)
	out := &Extraction{
		Doc:        doc,
		segmentIDs: make(map[int][]string),
		verbatim:   make(map[int]bool),
	}

	// Ids colliding with literal {T<n>} tokens anywhere in the document
	// must never be allocated, or the literal and the placeholder become
	// indistinguishable in the templates.
	for _, row := range rows {
		alloc.ReserveLiterals(row.Content)
	}

	for _, row := range rows {
		if row.Verbatim {
			// Untranslatable rows pass through whole.
			out.verbatim[row.Row] = true
			out.Templates = append(out.Templates, Template{Row: row.Row, Text: row.Content})
			continue
		}

		masker := base.WithAutoDetected(row.Content)
		template, segs, warnings := e.segmenter.Extract(row.Content, masker, alloc)

		for i := range segs {
			segs[i].Row = row.Row
			out.segmentIDs[row.Row] = append(out.segmentIDs[row.Row], segs[i].ID)
		}
		out.Segments = append(out.Segments, segs...)
		out.Templates = append(out.Templates, Template{Row: row.Row, Text: template})
		for _, w := range warnings {
			out.Warnings = append(out.Warnings, fmt.Sprintf("row %d: %s", row.Row, w))
		}
	}

	return out, nil
}

// pendingItem is one unique string headed for the provider.
type pendingItem struct {
	hash string
	orig string // canonical text, for the failure sentinel
	text string // provider input, with glossary placeholders applied
	subs map[string]string
}

// TranslateUnique produces one translation per unique string for the
// target language. Resolution order per string: exact glossary match
// (provider never called), translation-memory match at or above the
// auto-apply threshold, then glossary substitution followed by a single
// batched provider call and placeholder restoration. Provider failures
// embed the failure sentinel instead of dropping the string; with no
// provider configured, unresolved strings are skipped and counted.
//
// The returned map is keyed by canonical text hash; distribute it back
// to segment ids with UniqueSet.DistributeByDoc.
func (e *Engine) TranslateUnique(ctx context.Context, set *UniqueSet, targetLang string) (map[string]string, *Stats, error) {
	stats := &Stats{
		Unique:      set.UniqueCount(),
		Occurrences: set.OccurrenceCount(),
	}
	out := make(map[string]string, set.UniqueCount())
	var pending []pendingItem

	for _, rec := range set.Records() {
		if e.glossary != nil {
			if v, ok := e.glossary.Lookup(rec.Text, e.sourceLang, targetLang); ok {
				out[rec.Hash] = v
				stats.GlossaryHits++
				continue
			}
		}

		if e.memory != nil {
			matches, err := e.memory.Match(rec.Text, targetLang, e.fuzzyThreshold)
			if err != nil {
				stats.Warnings = append(stats.Warnings,
					fmt.Sprintf("memory lookup failed for %q: %v", rec.Text, err))
			} else if len(matches) > 0 && matches[0].Score >= e.autoApplyThreshold {
				out[rec.Hash] = matches[0].Unit.TargetText
				stats.MemoryHits++
				continue
			}
		}

		item := pendingItem{hash: rec.Hash, orig: rec.Text, text: rec.Text}
		if e.glossary != nil {
			item.text, item.subs = e.glossary.Substitute(rec.Text, e.sourceLang, targetLang)
		}
		pending = append(pending, item)
	}

	if len(pending) == 0 {
		return out, stats, nil
	}

	if e.provider == nil {
		stats.Skipped = len(pending)
		return out, stats, nil
	}

	texts := make([]string, len(pending))
	for i, item := range pending {
		texts[i] = item.text
	}

	results, err := e.provider.Translate(ctx, TranslateRequest{
		Texts:         texts,
		SourceLang:    e.sourceLang,
		TargetLang:    targetLang,
		ExcludedTerms: e.dntTerms,
		Context:       e.context,
	})
	if err == nil && len(results) != len(pending) {
		err = &CountMismatchError{Expected: len(pending), Got: len(results)}
	}
	if err != nil {
		for _, item := range pending {
			out[item.hash] = FailureSentinel(item.orig)
			stats.Failed++
		}
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("provider: %v", err))
		return out, stats, nil
	}

	for i, item := range pending {
		out[item.hash] = Restore(results[i], item.subs)
		stats.Translated++
	}

	return out, stats, nil
}
