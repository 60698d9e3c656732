package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\n\n  \nb\n"))
}

func TestCountCommits(t *testing.T) {
	assert.Equal(t, 0, CountCommits(nil))
	assert.Equal(t, 3, CountCommits([]string{"h1", "h2", "h3"}))
}

// TestChurnTotalsScenario exercises the three-commit example: cumulative
// totals are the sum of all per-line matches and the maxima are the largest
// single-line values.
func TestChurnTotalsScenario(t *testing.T) {
	lines := []string{
		"abc1234 Fix bug",
		" 2 files changed, 10 insertions(+), 2 deletions(-)",
		"def5678 fixes typo",
		" 1 file changed, 1 insertion(+)",
		"9abcdef refactor",
		" 4 files changed, 5 deletions(-)",
	}

	var totals ChurnTotals
	totals.Accumulate(lines)

	assert.Equal(t, 7, totals.Files)
	assert.Equal(t, 11, totals.Adds)
	assert.Equal(t, 7, totals.Dels)
	assert.Equal(t, 4, totals.MaxFiles)
	assert.Equal(t, 10, totals.MaxAdds)
	assert.Equal(t, 5, totals.MaxDels)
}

func TestChurnTotalsNoMatches(t *testing.T) {
	var totals ChurnTotals
	totals.Accumulate([]string{"abc1234 nothing statistical here"})
	assert.Equal(t, ChurnTotals{}, totals)
}

// TestChurnTotalsTolerantMatching covers case-insensitivity and the fact
// that the stat line format is not rigidly anchored.
func TestChurnTotalsTolerantMatching(t *testing.T) {
	var totals ChurnTotals
	totals.Accumulate([]string{"noise 3 FILES CHANGED, 7 Insertions(+), 1 Deletion(-) noise"})
	assert.Equal(t, 3, totals.Files)
	assert.Equal(t, 7, totals.Adds)
	assert.Equal(t, 1, totals.Dels)
}

func TestChurnTotalsAccumulatesAcrossCalls(t *testing.T) {
	var totals ChurnTotals
	totals.Accumulate([]string{" 2 files changed, 4 insertions(+)"})
	totals.Accumulate([]string{" 5 files changed, 1 insertion(+)"})
	assert.Equal(t, 7, totals.Files)
	assert.Equal(t, 5, totals.Adds)
	assert.Equal(t, 5, totals.MaxFiles)
	assert.Equal(t, 4, totals.MaxAdds)
}

// TestWordlistScenario is the canonical keyword example: two of the three
// messages qualify for "fix".
func TestWordlistScenario(t *testing.T) {
	wl := NewWordlist([]string{"fix"})
	counts := wl.CountMatches([]string{"Fix bug", "fixes typo", "refactor"})
	assert.Equal(t, 2, counts["fix"])
}

func TestWordlistSuffixes(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    int
	}{
		{"bare keyword", "fix the build", 1},
		{"capitalized", "Fix the build", 1},
		{"plural s", "two fixes landed", 1},
		{"past tense", "fixed the build", 1},
		{"agent er", "the fixer strikes again", 1},
		{"gerund", "fixing flaky test", 1},
		{"trailing hyphen", "fix- stuff", 1},
		{"underscore boundary", "apply fix_for_login", 1},
		{"embedded in word", "prefix the name", 0},
		{"unrelated", "refactor parser", 0},
	}
	wl := NewWordlist([]string{"fix"})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counts := wl.CountMatches([]string{tc.message})
			assert.Equal(t, tc.want, counts["fix"], "message: %q", tc.message)
		})
	}
}

// TestWordlistOncePerMessage verifies a qualifying message increments the
// count by exactly one even when the keyword repeats within it.
func TestWordlistOncePerMessage(t *testing.T) {
	wl := NewWordlist([]string{"fix"})
	counts := wl.CountMatches([]string{"fix fix fix"})
	assert.Equal(t, 1, counts["fix"])
}

func TestWordlistInitializesAllKeywords(t *testing.T) {
	wl := NewWordlist([]string{"fix", "revert"})
	counts := wl.CountMatches(nil)
	assert.Equal(t, map[string]int{"fix": 0, "revert": 0}, counts)
}

func TestWordlistEmpty(t *testing.T) {
	wl := NewWordlist(nil)
	assert.True(t, wl.Empty())
	assert.Empty(t, wl.CountMatches([]string{"fix bug"}))
}

// TestWordlistQuotesMeta ensures keywords containing regex metacharacters
// cannot break pattern compilation.
func TestWordlistQuotesMeta(t *testing.T) {
	wl := NewWordlist([]string{"c++"})
	counts := wl.CountMatches([]string{"port parser to c++"})
	assert.Equal(t, 1, counts["c++"])
}
