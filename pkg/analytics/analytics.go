package analytics

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are frequent function words ignored by term frequency analysis.
var stopwords = buildSet(`
a about above across after again against all almost also although always am
among an and another any anyone anything are aren't around as at
be became because become been before being below between beyond both but by
can can't cannot could couldn't
did didn't do does doesn't doing don't done down during
each either else enough etc even ever every
few for from further
had hadn't has hasn't have haven't having he he'd he'll he's her here hers
herself him himself his how however
i i'd i'll i'm i've if in into is isn't it it's its itself
just last least less let's like likely
made make many may maybe me might mine more most much must my myself
neither never next no nobody none nor not nothing now nowhere
of off often on once one only onto or other others our ours ourselves out
over own
per perhaps please rather same see seem seems several she she'd she'll she's
should shouldn't since so some something sometimes still such
than that that's the their theirs them themselves then there there's
therefore these they they'd they'll they're they've this those through thus
to too toward towards
under until up upon us use very via
was wasn't we we'd we'll we're we've well were weren't what what's when where
whether which while who who's whom whose why will with within without won't
would wouldn't
yet you you'd you'll you're you've your yours yourself yourselves
el la los las lo un una unos unas de del al y o que en por para con sin es
son se su sus como pero más este esta estos estas
`)

func buildSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// TermCount is a term and the number of times it occurs.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// TermFrequency counts normalized words, skipping stopwords and tokens
// without letters.
func TermFrequency(normalized []string) map[string]int {
	frequencies := make(map[string]int)
	for _, w := range normalized {
		if w == "" || IsStopword(w) || strings.IndexFunc(w, unicode.IsLetter) < 0 {
			continue
		}
		frequencies[w]++
	}
	return frequencies
}

// TopTerms returns the n most frequent terms, ties broken alphabetically
// so the result is stable across runs.
func TopTerms(normalized []string, n int) []TermCount {
	if n <= 0 {
		return nil
	}
	frequencies := TermFrequency(normalized)

	counts := make([]TermCount, 0, len(frequencies))
	for term, count := range frequencies {
		counts = append(counts, TermCount{Term: term, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Term < counts[j].Term
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
