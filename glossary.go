package goweft

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// glossPlaceholderPrefix and suffix delimit intermediate glossary
// placeholders (__GLOSS_0__, __GLOSS_1__, ...). The format is opaque to
// natural language so translation providers pass it through unchanged,
// and it is fixed for round-trip compatibility with surrounding tooling.
const (
	glossPlaceholderPrefix = "__GLOSS_"
	glossPlaceholderSuffix = "__"
)

// GlossPlaceholder returns the nth intermediate glossary placeholder.
func GlossPlaceholder(n int) string {
	return glossPlaceholderPrefix + strconv.Itoa(n) + glossPlaceholderSuffix
}

// Glossary holds an ordered list of pre-translated entries. Lookup order
// follows entry order; embedded substitution prefers longer source terms.
type Glossary struct {
	entries []GlossaryEntry
}

// NewGlossary creates a glossary from ordered entries. Entries without a
// term map are dropped.
func NewGlossary(entries ...GlossaryEntry) *Glossary {
	g := &Glossary{}
	for _, e := range entries {
		if len(e.Terms) == 0 {
			continue
		}
		g.entries = append(g.entries, e)
	}
	return g
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Lookup returns the target-language value for a segment whose full
// trimmed text exactly matches an entry's source value
// (case-insensitive). Callers use it to short-circuit machine
// translation entirely. The second return is false when no entry matches
// or the matching entry has no value for the target language.
func (g *Glossary) Lookup(text, sourceLang, targetLang string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	for _, e := range g.entries {
		src, ok := termFor(e, sourceLang)
		if !ok || !strings.EqualFold(strings.TrimSpace(src), trimmed) {
			continue
		}
		if tgt, ok := termFor(e, targetLang); ok {
			return tgt, true
		}
	}
	return "", false
}

// Substitute scans text for embedded glossary terms for the language
// pair and replaces each non-overlapping match with a distinct opaque
// placeholder. Longer source terms win; multi-word phrases match
// anywhere, single words only at word boundaries. It returns the
// processed text and the placeholder → target-literal substitution map
// consumed by Restore after translation. The map is empty when nothing
// matched.
func (g *Glossary) Substitute(text, sourceLang, targetLang string) (string, map[string]string) {
	type pair struct {
		src string
		tgt string
	}
	var pairs []pair
	for _, e := range g.entries {
		src, ok := termFor(e, sourceLang)
		if !ok || strings.TrimSpace(src) == "" {
			continue
		}
		tgt, ok := termFor(e, targetLang)
		if !ok {
			continue
		}
		pairs = append(pairs, pair{src: src, tgt: tgt})
	}
	if len(pairs) == 0 {
		return text, map[string]string{}
	}

	// Longest source term first; entry order breaks ties.
	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].src) > len(pairs[j].src)
	})

	type span struct {
		start int
		end   int
		tgt   string
	}
	var spans []span
	claimed := func(start, end int) bool {
		for _, sp := range spans {
			if start < sp.end && end > sp.start {
				return true
			}
		}
		return false
	}

	for _, p := range pairs {
		wholeWord := !strings.ContainsRune(p.src, ' ')
		offset := 0
		for offset < len(text) {
			i := indexFold(text[offset:], p.src)
			if i < 0 {
				break
			}
			start := offset + i
			end := start + len(p.src)
			offset = start + 1
			if claimed(start, end) {
				continue
			}
			if wholeWord && !atWordBoundary(text, start, end) {
				continue
			}
			spans = append(spans, span{start: start, end: end, tgt: p.tgt})
			offset = end
		}
	}

	if len(spans) == 0 {
		return text, map[string]string{}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	subs := make(map[string]string, len(spans))
	var b strings.Builder
	prev := 0
	for n, sp := range spans {
		ph := GlossPlaceholder(n)
		subs[ph] = sp.tgt
		b.WriteString(text[prev:sp.start])
		b.WriteString(ph)
		prev = sp.end
	}
	b.WriteString(text[prev:])
	return b.String(), subs
}

// Restore replaces every placeholder in translated text with its
// glossary target value. Replacement is literal substring replacement,
// never pattern-based, so placeholder contents cannot be misread.
func Restore(text string, subs map[string]string) string {
	for ph, val := range subs {
		text = strings.ReplaceAll(text, ph, val)
	}
	return text
}

// termFor resolves an entry's value for a language code, trying the code
// as given, its normalized form, and its base language.
func termFor(e GlossaryEntry, lang string) (string, bool) {
	if v, ok := e.Terms[lang]; ok {
		return v, true
	}
	norm := NormalizeLocale(lang)
	if v, ok := e.Terms[norm]; ok {
		return v, true
	}
	base := BaseLang(lang)
	if v, ok := e.Terms[base]; ok {
		return v, true
	}
	// A locale-qualified key may serve a bare base-language request.
	// Keys are visited in sorted order so the fallback is deterministic.
	keys := make([]string, 0, len(e.Terms))
	for k := range e.Terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if BaseLang(k) == base {
			return e.Terms[k], true
		}
	}
	return "", false
}

// atWordBoundary reports whether text[start:end] is delimited by
// non-word runes (or string edges) on both sides.
func atWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
