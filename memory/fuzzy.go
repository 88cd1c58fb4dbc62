package memory

import (
	"math"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ZaguanLabs/goweft"
)

// Matcher scores translation-memory candidates against a query string.
//
// Scoring is edit-distance based, O(units × length²) per query. The
// cheap length pre-filter in Match keeps large stores tolerable, but a
// store holding very long units still pays the quadratic cost for
// candidates that survive it.
type Matcher struct {
	store Store
}

// NewMatcher creates a matcher over a store.
func NewMatcher(store Store) *Matcher {
	return &Matcher{store: store}
}

// Match returns every stored unit for the target language scoring at or
// above the threshold, sorted by descending score. An empty store or no
// language-qualifying units yields an empty list, never an error.
func (m *Matcher) Match(query, targetLang string, threshold int) ([]goweft.Match, error) {
	units, err := m.store.Units(targetLang)
	if err != nil {
		return nil, err
	}

	nq := Normalize(query)
	nqLen := len([]rune(nq))

	var matches []goweft.Match
	for _, unit := range units {
		nc := Normalize(unit.SourceText)

		var score int
		if nq == nc {
			score = 100
		} else {
			// Length pre-filter: with distance at least the length gap,
			// the score cannot exceed 100·shorter/longer.
			ncLen := len([]rune(nc))
			longer, shorter := nqLen, ncLen
			if ncLen > nqLen {
				longer, shorter = ncLen, nqLen
			}
			if longer == 0 {
				continue
			}
			if best := roundPct(shorter, longer); best < threshold {
				continue
			}
			score = Score(nq, nc)
		}

		if score >= threshold {
			matches = append(matches, goweft.Match{Unit: unit, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// Normalize lowercases, strips markup tags, and collapses whitespace so
// formatting differences never hide a reusable translation.
func Normalize(s string) string {
	if strings.ContainsRune(s, '<') {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Score computes the edit-distance similarity of two normalized strings
// as round(100 × (longerLen − distance) / longerLen), in [0,100].
func Score(a, b string) int {
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 100
	}
	dist := EditDistance(a, b)
	return roundPct(longer-dist, longer)
}

// EditDistance computes the classic single-character insert, delete, and
// substitute edit distance between two strings, by rune.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // delete
				curr[j-1]+1,    // insert
				prev[j-1]+cost, // substitute
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func roundPct(num, den int) int {
	return int(math.Round(100 * float64(num) / float64(den)))
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Verify Matcher implements the engine interface.
var _ goweft.MemoryMatcher = (*Matcher)(nil)
