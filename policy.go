package goweft

import "fmt"

// OverwritePolicy governs whether existing translated content in a
// document is preserved, filled only when blank, or always replaced.
type OverwritePolicy string

const (
	// PolicyKeep never writes over a cell, except that brand-new columns
	// have their blank cells filled once.
	PolicyKeep OverwritePolicy = "keep"
	// PolicyFillEmpty writes only into currently blank cells.
	PolicyFillEmpty OverwritePolicy = "fill-empty"
	// PolicyOverwriteAll always writes when there is content to write.
	PolicyOverwriteAll OverwritePolicy = "overwrite-all"
)

// Legacy global policy values accepted from older configurations. They
// are resolved into per-language OverwritePolicy values at load time;
// the merge engine never sees them.
const (
	LegacyKeepAll        = "keep-all"
	LegacyOverwriteEmpty = "overwrite-empty"
	LegacyOverwriteAll   = "overwrite-all"
)

// Valid reports whether p is a known policy value.
func (p OverwritePolicy) Valid() bool {
	switch p {
	case PolicyKeep, PolicyFillEmpty, PolicyOverwriteAll:
		return true
	}
	return false
}

// ResolveLegacyPolicy maps a legacy global policy value onto the
// per-language form. The empty string resolves to PolicyKeep.
func ResolveLegacyPolicy(legacy string) (OverwritePolicy, error) {
	switch legacy {
	case "", LegacyKeepAll:
		return PolicyKeep, nil
	case LegacyOverwriteEmpty:
		return PolicyFillEmpty, nil
	case LegacyOverwriteAll:
		return PolicyOverwriteAll, nil
	}
	return "", fmt.Errorf("unknown legacy overwrite policy %q", legacy)
}

// ResolvePolicies produces the single per-language policy map the merge
// engine consumes. Explicit per-language values win; languages without
// one fall back to the resolved legacy global value. Resolution happens
// once, at configuration-load time, so no legacy branching survives
// into the merge path.
func ResolvePolicies(legacy string, perLang map[string]OverwritePolicy, langs []string) (map[string]OverwritePolicy, error) {
	fallback, err := ResolveLegacyPolicy(legacy)
	if err != nil {
		return nil, err
	}
	out := make(map[string]OverwritePolicy, len(langs))
	for _, lang := range langs {
		if p, ok := perLang[lang]; ok {
			if !p.Valid() {
				return nil, fmt.Errorf("invalid overwrite policy %q for language %s", p, lang)
			}
			out[lang] = p
			continue
		}
		out[lang] = fallback
	}
	return out, nil
}
