package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/alexdrone/swatch-yaml/internal/result"
)

// maxSuggestionDistance bounds the edit distance of a suggested anchor when
// no anchor contains the alias as a subsequence.
const maxSuggestionDistance = 2

func unknownAlias(c Context, name string) *result.Error {
	message := "unknown alias " + name
	if anchor := closestAnchor(name, c.anchorNames()); anchor != "" {
		message += " (did you mean " + anchor + "?)"
	}
	return c.fail(message)
}

// closestAnchor picks the anchor most similar to name, or "" if none is
// close enough.
func closestAnchor(name string, anchors []string) string {
	if name == "" || len(anchors) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindFold(name, anchors); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", maxSuggestionDistance+1
	for _, anchor := range anchors {
		if d := fuzzy.LevenshteinDistance(name, anchor); d < bestDistance {
			best, bestDistance = anchor, d
		}
	}
	return best
}
