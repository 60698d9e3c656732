package agg

import (
	"regexp"
	"strconv"
	"strings"
)

// Shortstat patterns. A "--shortstat" summary line looks like
// " 3 files changed, 10 insertions(+), 2 deletions(-)"; each pattern is
// matched independently and tolerates surrounding text, so a line may match
// zero, one, two or all three.
var (
	filesPattern = regexp.MustCompile(`(?i)\s+([0-9]+)\s+file`)
	addsPattern  = regexp.MustCompile(`(?i)\s+([0-9]+)\s+inser`)
	delsPattern  = regexp.MustCompile(`(?i)\s+([0-9]+)\s+delet`)
)

// SplitLines splits raw log output into its non-blank lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// CountCommits counts the commits in a one-line-per-commit log query.
func CountCommits(lines []string) int {
	return len(lines)
}

// ChurnTotals accumulates file/insertion/deletion counts over shortstat log
// lines, tracking both cumulative totals and the largest single-commit value
// per metric.
type ChurnTotals struct {
	Files    int
	Adds     int
	Dels     int
	MaxFiles int
	MaxAdds  int
	MaxDels  int
}

// Accumulate folds the given log lines into the running totals.
func (t *ChurnTotals) Accumulate(lines []string) {
	for _, line := range lines {
		if n, ok := matchCount(filesPattern, line); ok {
			t.Files += n
			t.MaxFiles = max(t.MaxFiles, n)
		}
		if n, ok := matchCount(addsPattern, line); ok {
			t.Adds += n
			t.MaxAdds = max(t.MaxAdds, n)
		}
		if n, ok := matchCount(delsPattern, line); ok {
			t.Dels += n
			t.MaxDels = max(t.MaxDels, n)
		}
	}
}

// matchCount extracts the integer captured by pattern, if any.
func matchCount(pattern *regexp.Regexp, line string) (int, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Wordlist scores commit messages against configured keywords. Matching is a
// forgiving heuristic: case-insensitive, accepting the bare keyword or the
// keyword followed by a small set of inflection suffixes, with a word-ish
// boundary after. It both under- and over-matches; the suffix list is kept
// verbatim for compatibility with existing reports.
type Wordlist struct {
	words    []string
	patterns map[string]*regexp.Regexp
}

// keywordSuffixes are the accepted pluralization/inflection endings.
const keywordSuffixes = `s|z|d|es|ed|er|rs|ers|or|ors|ing|in|-`

// NewWordlist compiles a matcher per keyword, preserving keyword order.
func NewWordlist(words []string) *Wordlist {
	wl := &Wordlist{
		words:    words,
		patterns: make(map[string]*regexp.Regexp, len(words)),
	}
	for _, w := range words {
		wl.patterns[w] = regexp.MustCompile(
			`(?i)\b(` + regexp.QuoteMeta(w) + `)(\b|` + keywordSuffixes + `)?(\b|\\s|-|_|$)`)
	}
	return wl
}

// Words returns the configured keywords in their configured order.
func (wl *Wordlist) Words() []string {
	return wl.words
}

// Empty reports whether no keywords are configured.
func (wl *Wordlist) Empty() bool {
	return len(wl.words) == 0
}

// CountMatches counts, per keyword, the commit message lines that match it.
// Each qualifying line increments the keyword's count by exactly one, no
// matter how often the keyword appears within it. Every keyword is present
// in the result, initialized to zero.
func (wl *Wordlist) CountMatches(lines []string) map[string]int {
	counts := make(map[string]int, len(wl.words))
	for _, w := range wl.words {
		counts[w] = 0
	}
	for _, w := range wl.words {
		pattern := wl.patterns[w]
		for _, line := range lines {
			if pattern.MatchString(line) {
				counts[w]++
			}
		}
	}
	return counts
}
