package match

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum similarity Suggest accepts.
const DefaultThreshold = 0.6

// DefaultLimit is the maximum number of names Suggest returns.
const DefaultLimit = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns up to DefaultLimit names from known that resemble name,
// best first. Ties keep alphabetical order. An exact match returns nothing
// because it needs no suggestion.
func Suggest(name string, known []string) []string {
	return SuggestN(name, known, DefaultLimit, DefaultThreshold)
}

// SuggestN is Suggest with an explicit limit and threshold.
func SuggestN(name string, known []string, limit int, threshold float64) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	norm := NormalizeIdent(name)
	stripped := StripSchemaSuffix(norm)

	var hits []scored

	for _, k := range known {
		if k == name {
			return nil
		}

		kn := NormalizeIdent(k)
		score := max(Similarity(norm, kn), Similarity(stripped, StripSchemaSuffix(kn)))

		if strings.HasPrefix(kn, norm) || strings.HasPrefix(norm, kn) {
			score = max(score, threshold)
		}

		if score >= threshold {
			hits = append(hits, scored{name: k, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}

		return hits[i].name < hits[j].name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
