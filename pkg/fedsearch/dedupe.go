package fedsearch

import "strings"

// Cross-source identity is established here and only here, by the
// source-specific natural keys: NCT registry ID for trials, PMID/DOI/arXiv
// ID for publications, and a normalized name for researchers. Record `id`
// equality is never used; ids are only unique per source.
//
// On any match the internal record wins and the external duplicate is
// discarded; between two external records the first seen wins.

// DedupeTrials merges trials by NCT-style registry ID.
func DedupeTrials(trials []Trial) []Trial {
	seen := make(map[string]int)
	var out []Trial
	for _, t := range trials {
		key := ""
		if strings.HasPrefix(strings.ToUpper(t.ID), "NCT") {
			key = "nct:" + strings.ToUpper(t.ID)
		}
		if key == "" {
			out = append(out, t)
			continue
		}
		if idx, ok := seen[key]; ok {
			if t.IsInternal && !out[idx].IsInternal {
				out[idx] = t
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, t)
	}
	return out
}

// DedupePublications merges publications by PMID, then DOI, then arXiv ID.
// A record registers every key it carries so a PubMed record and an arXiv
// preprint sharing a DOI collapse into one.
func DedupePublications(pubs []Publication) []Publication {
	seen := make(map[string]int)
	var out []Publication
	for _, p := range pubs {
		keys := publicationKeys(p)

		match := -1
		for _, k := range keys {
			if idx, ok := seen[k]; ok {
				match = idx
				break
			}
		}
		if match >= 0 {
			if p.IsInternal && !out[match].IsInternal {
				out[match] = p
			}
			// Re-register under all keys so later aliases still match.
			for _, k := range keys {
				seen[k] = match
			}
			continue
		}

		idx := len(out)
		out = append(out, p)
		for _, k := range keys {
			seen[k] = idx
		}
	}
	return out
}

func publicationKeys(p Publication) []string {
	var keys []string
	if p.PMID != "" {
		keys = append(keys, "pmid:"+p.PMID)
	}
	if p.DOI != "" {
		keys = append(keys, "doi:"+strings.ToLower(p.DOI))
	}
	if p.ArxivID != "" {
		keys = append(keys, "arxiv:"+strings.ToLower(p.ArxivID))
	}
	return keys
}

// DedupeResearchers merges researchers by normalized name. The name is a
// soft key: it exists so a researcher with both local and external records
// is not shown twice, not to assert global identity.
func DedupeResearchers(researchers []Researcher) []Researcher {
	seen := make(map[string]int)
	var out []Researcher
	for _, r := range researchers {
		key := normalizeName(r.Name)
		if key == "" {
			out = append(out, r)
			continue
		}
		if idx, ok := seen[key]; ok {
			if r.IsInternal && !out[idx].IsInternal {
				out[idx] = r
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, r)
	}
	return out
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
