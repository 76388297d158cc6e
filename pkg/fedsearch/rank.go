package fedsearch

import (
	"math"
	"sort"
	"strings"
)

// RankTrials orders internal records before external ones. Within either
// bucket the adapter order is kept: the local store already returns
// newest-first, and registries return by their own relevance.
func RankTrials(trials []Trial) []Trial {
	sort.SliceStable(trials, func(i, j int) bool {
		return trials[i].IsInternal && !trials[j].IsInternal
	})
	return trials
}

// RankPublications orders internal records before external ones.
func RankPublications(pubs []Publication) []Publication {
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].IsInternal && !pubs[j].IsInternal
	})
	return pubs
}

// RankResearchers scores every candidate against the caller-supplied
// location and orders: internal first, then location score descending,
// then publication count descending. Without a location the score tier
// drops out.
func RankResearchers(researchers []Researcher, userLocation string) []Researcher {
	for i := range researchers {
		researchers[i].LocationScore = LocationScore(userLocation, researchers[i].Location)
	}
	sort.SliceStable(researchers, func(i, j int) bool {
		a, b := researchers[i], researchers[j]
		if a.IsInternal != b.IsInternal {
			return a.IsInternal
		}
		if userLocation != "" && a.LocationScore != b.LocationScore {
			return a.LocationScore > b.LocationScore
		}
		return a.PublicationCount > b.PublicationCount
	})
	return researchers
}

// LocationScore is a 0-100 heuristic proximity measure between the
// caller's location string and a researcher's recorded one.
//
// Exact case-insensitive match scores 100 and a substring relation scores
// 80. Otherwise both strings are split on commas and whitespace and every
// token pair is compared: 1.0 for an exact match, 0.7 for a substring
// relation, 0.3 for a shared 3-character prefix when both tokens are at
// least 3 characters. The summed awards are normalized by the larger
// token count, scaled to 70 and rounded.
//
// The prefix rule can hand partial credit to unrelated places that happen
// to share a prefix ("Georgia" the country vs. the US state, "Mali" vs.
// "Malibu"). Known ranking inaccuracy, kept for compatibility.
func LocationScore(userLocation, researcherLocation string) int {
	u := strings.TrimSpace(userLocation)
	r := strings.TrimSpace(researcherLocation)
	if u == "" || r == "" || strings.EqualFold(r, NotSpecified) || strings.EqualFold(u, NotSpecified) {
		return 0
	}

	ul, rl := strings.ToLower(u), strings.ToLower(r)
	if ul == rl {
		return 100
	}
	if strings.Contains(ul, rl) || strings.Contains(rl, ul) {
		return 80
	}

	userTokens := splitLocationTokens(ul)
	researcherTokens := splitLocationTokens(rl)
	if len(userTokens) == 0 || len(researcherTokens) == 0 {
		return 0
	}

	var sum float64
	for _, ut := range userTokens {
		for _, rt := range researcherTokens {
			switch {
			case ut == rt:
				sum += 1.0
			case strings.Contains(ut, rt) || strings.Contains(rt, ut):
				sum += 0.7
			case len(ut) >= 3 && len(rt) >= 3 && ut[:3] == rt[:3]:
				sum += 0.3
			}
		}
	}

	denom := float64(len(userTokens))
	if len(researcherTokens) > len(userTokens) {
		denom = float64(len(researcherTokens))
	}
	score := int(math.Round(sum / denom * 70))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func splitLocationTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
