package goweft

import "sync"

// DocumentInput is one document for a batch extraction pass.
type DocumentInput struct {
	Doc  string
	Rows []SourceRow
}

// ExtractAll segments every document concurrently, each with its own
// freshly created id allocator, so segment ids never collide across
// documents. The shared UniqueSet is built after all passes join, in
// input order, keeping dedup record ordering deterministic.
func (e *Engine) ExtractAll(docs []DocumentInput) ([]*Extraction, *UniqueSet, error) {
	if e.segmenter == nil {
		return nil, nil, &SegmentError{Message: "no segmenter registered"}
	}

	extractions := make([]*Extraction, len(docs))
	var wg sync.WaitGroup

	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc DocumentInput) {
			defer wg.Done()
			// ExtractDocument only errors on a nil segmenter or allocator,
			// both guaranteed non-nil here.
			ext, _ := e.ExtractDocument(doc.Doc, doc.Rows, NewIDAllocator())
			extractions[i] = ext
		}(i, doc)
	}
	wg.Wait()

	set := NewUniqueSet()
	for _, ext := range extractions {
		for _, seg := range ext.Segments {
			set.Add(ext.Doc, seg)
		}
	}

	return extractions, set, nil
}
