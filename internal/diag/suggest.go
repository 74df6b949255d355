package diag

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// maxEditDistance is the largest Levenshtein distance still worth suggesting.
const maxEditDistance = 2

// Suggest returns up to max suggested methods for an unknown method on
// class. Case-insensitive exact matches win; otherwise candidates are scored
// by Levenshtein distance over lowercased names and accepted at distance
// <= 2, closest first.
func Suggest(docs DocSource, class, method string, max int) []MethodSig {
	if docs == nil || max <= 0 {
		return nil
	}
	methods, ok := docs.Methods(class)
	if !ok {
		return nil
	}

	lower := strings.ToLower(method)

	exact := make([]MethodSig, 0)
	for _, m := range methods {
		if strings.ToLower(m.Name) == lower && m.Name != method {
			exact = append(exact, m)
		}
	}
	if len(exact) > 0 {
		if len(exact) > max {
			exact = exact[:max]
		}
		return exact
	}

	type scored struct {
		dist int
		sig  MethodSig
	}
	candidates := make([]scored, 0)
	for _, m := range methods {
		d := levenshtein.Distance(lower, strings.ToLower(m.Name), nil)
		if d <= maxEditDistance {
			candidates = append(candidates, scored{dist: d, sig: m})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]MethodSig, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.sig)
	}
	return out
}
