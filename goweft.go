// Package goweft is a text extraction, placeholder-templating, and merge
// engine for multi-language tabular documents.
//
// Goweft pulls translatable substrings out of mixed markup/plain content
// while protecting do-not-translate terms, substitutes glossary
// translations without invoking machine translation, deduplicates
// identical strings across rows and documents, fuzzy-matches against a
// translation-memory store, and merges per-language translations back
// into a multi-column document under configurable overwrite policies.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/goweft"
//	    "github.com/ZaguanLabs/goweft/provider"
//	    "github.com/ZaguanLabs/goweft/segment"
//	)
//
//	func main() {
//	    eng := goweft.New("en",
//	        goweft.WithSegmenter(segment.New()),
//	        goweft.WithProvider(provider.NewOpenAIProvider(provider.OpenAIConfig{})),
//	        goweft.WithDNTTerms([]string{"Acme"}),
//	    )
//
//	    alloc := goweft.NewIDAllocator()
//	    rows := []goweft.SourceRow{{Row: 0, Content: "<p>Hello Acme</p>"}}
//	    ext, err := eng.ExtractDocument("doc-1", rows, alloc)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    set := goweft.NewUniqueSet()
//	    for _, seg := range ext.Segments {
//	        set.Add("doc-1", seg)
//	    }
//
//	    byHash, stats, err := eng.TranslateUnique(context.Background(), set, "fr_FR")
//	    // ... distribute byHash through segment ids and call goweft.Merge.
//	}
//
// The engine never performs network or filesystem access on its own: the
// machine-translation provider and the translation-memory store are
// injected collaborators, and every output is a pure return value.
package goweft
