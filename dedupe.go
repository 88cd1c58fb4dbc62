package goweft

import "strings"

// UniqueSet maps canonical extracted text to every occurrence across
// rows and documents. It guarantees at most one translation request per
// unique string per target language: callers translate Records() and
// fan the results back out through DistributeByDoc.
//
// UniqueSet is not safe for concurrent use; build it after joining
// parallel extraction passes.
type UniqueSet struct {
	byHash map[string]*UniqueString
	order  []string
	total  int
}

// NewUniqueSet creates an empty set.
func NewUniqueSet() *UniqueSet {
	return &UniqueSet{byHash: make(map[string]*UniqueString)}
}

// Add records one segment occurrence from the named document. The dedup
// key is the trimmed inner text only: occurrences inside different
// surrounding markup still dedup together.
func (s *UniqueSet) Add(doc string, seg Segment) {
	text := strings.TrimSpace(seg.Text)
	if text == "" {
		return
	}
	hash := HashText(text)
	rec, ok := s.byHash[hash]
	if !ok {
		rec = &UniqueString{Text: text, Hash: hash}
		s.byHash[hash] = rec
		s.order = append(s.order, hash)
	}
	rec.Occurrences = append(rec.Occurrences, Occurrence{
		Doc:       doc,
		Row:       seg.Row,
		SegmentID: seg.ID,
	})
	s.total++
}

// Records returns the unique strings in first-seen order.
func (s *UniqueSet) Records() []UniqueString {
	out := make([]UniqueString, 0, len(s.order))
	for _, hash := range s.order {
		out = append(out, *s.byHash[hash])
	}
	return out
}

// UniqueCount returns the number of distinct canonical strings.
func (s *UniqueSet) UniqueCount() int {
	return len(s.order)
}

// OccurrenceCount returns the total number of recorded occurrences. The
// difference between this and UniqueCount is the translation savings
// from deduplication.
func (s *UniqueSet) OccurrenceCount() int {
	return s.total
}

// DistributeByDoc fans per-hash translations back out to every
// occurrence, keyed by document and then segment id. Hashes with no
// translation are left out so the merge step can surface them.
func (s *UniqueSet) DistributeByDoc(byHash map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, hash := range s.order {
		text, ok := byHash[hash]
		if !ok {
			continue
		}
		for _, occ := range s.byHash[hash].Occurrences {
			perDoc, ok := out[occ.Doc]
			if !ok {
				perDoc = make(map[string]string)
				out[occ.Doc] = perDoc
			}
			perDoc[occ.SegmentID] = text
		}
	}
	return out
}
