package goweft

import (
	"regexp"
	"strconv"
)

// idLiteralPattern matches literal placeholder-shaped tokens already
// present in document content, e.g. "{T2}".
var idLiteralPattern = regexp.MustCompile(`\{T(\d+)\}`)

// IDAllocator hands out sequential segment ids for one segmentation pass.
// It is caller-owned: every pass gets its own allocator (or resets one),
// so concurrent passes over different documents never collide and
// identical input always yields identical ids.
//
// An IDAllocator is not safe for concurrent use; use one per goroutine.
type IDAllocator struct {
	next     int
	reserved map[int]bool
}

// NewIDAllocator returns an allocator whose first id is "T1".
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next sequential unreserved id, e.g. "T1", "T2", ...
func (a *IDAllocator) Next() string {
	for a.reserved[a.next] {
		a.next++
	}
	id := "T" + strconv.Itoa(a.next)
	a.next++
	return id
}

// ReserveLiterals scans content for literal {T<n>} tokens and marks each
// number as never-allocated. A document that already contains such a
// token (usually a protected interpolation variable) would otherwise be
// indistinguishable from a placeholder this allocator emits, and
// rebuilding the row would substitute into the wrong occurrence.
// Reservation is derived purely from content, so allocation stays
// deterministic for identical input.
func (a *IDAllocator) ReserveLiterals(content string) {
	for _, m := range idLiteralPattern.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		if a.reserved == nil {
			a.reserved = make(map[int]bool)
		}
		a.reserved[n] = true
	}
}

// Reset restores the allocator to its initial state, dropping
// reservations, so the next id is "T1" again.
func (a *IDAllocator) Reset() {
	a.next = 1
	a.reserved = nil
}

// Placeholder returns the template placeholder for a segment id, e.g.
// "{T7}". The format is fixed; downstream tooling depends on it.
func Placeholder(id string) string {
	return "{" + id + "}"
}
