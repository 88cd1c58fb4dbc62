package goweft

// DiffResult represents the difference between two extraction passes
// over the same document.
type DiffResult struct {
	// Added contains segments that are new (not in the previous pass).
	Added []Segment

	// Removed contains segments that are gone from the new pass.
	Removed []Segment

	// Unchanged contains segments whose text exists in both passes.
	Unchanged []Segment

	// Modified contains pairs where the text changed but the segment sits
	// at the same position (same row and id) in both passes.
	Modified []ModifiedSegment
}

// ModifiedSegment represents a segment whose text was edited in place.
type ModifiedSegment struct {
	Old Segment
	New Segment
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Modified  int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Modified:  len(d.Modified),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// NeedsTranslation returns the segments that need fresh translation:
// new segments plus the new side of modified ones.
func (d *DiffResult) NeedsTranslation() []Segment {
	result := make([]Segment, 0, len(d.Added)+len(d.Modified))
	result = append(result, d.Added...)
	for _, m := range d.Modified {
		result = append(result, m.New)
	}
	return result
}

// DiffSegments compares two extraction passes by canonical text hash.
// This is the basis of incremental re-translation when a document is
// re-uploaded: only what changed goes back to the provider.
func DiffSegments(oldSegs, newSegs []Segment) *DiffResult {
	result := &DiffResult{}

	oldByHash := make(map[string]Segment)
	newByHash := make(map[string]Segment)
	for _, seg := range oldSegs {
		oldByHash[HashText(seg.Text)] = seg
	}
	for _, seg := range newSegs {
		newByHash[HashText(seg.Text)] = seg
	}

	for _, seg := range oldSegs {
		if _, exists := newByHash[HashText(seg.Text)]; exists {
			result.Unchanged = append(result.Unchanged, seg)
		} else {
			result.Removed = append(result.Removed, seg)
		}
	}
	for _, seg := range newSegs {
		if _, exists := oldByHash[HashText(seg.Text)]; !exists {
			result.Added = append(result.Added, seg)
		}
	}

	return result
}

// DiffSegmentsWithPosition performs DiffSegments and then pairs removed
// with added segments that share a row and id, reporting them as
// modifications instead of a removal plus an addition.
func DiffSegmentsWithPosition(oldSegs, newSegs []Segment) *DiffResult {
	result := DiffSegments(oldSegs, newSegs)
	if len(result.Added) == 0 || len(result.Removed) == 0 {
		return result
	}

	addedMatched := make(map[int]bool)
	removedMatched := make(map[int]bool)

	for ri, removed := range result.Removed {
		for ai, added := range result.Added {
			if addedMatched[ai] {
				continue
			}
			if removed.Row == added.Row && removed.ID == added.ID {
				result.Modified = append(result.Modified, ModifiedSegment{
					Old: removed,
					New: added,
				})
				addedMatched[ai] = true
				removedMatched[ri] = true
				break
			}
		}
	}

	var newAdded []Segment
	for i, seg := range result.Added {
		if !addedMatched[i] {
			newAdded = append(newAdded, seg)
		}
	}
	result.Added = newAdded

	var newRemoved []Segment
	for i, seg := range result.Removed {
		if !removedMatched[i] {
			newRemoved = append(newRemoved, seg)
		}
	}
	result.Removed = newRemoved

	return result
}
