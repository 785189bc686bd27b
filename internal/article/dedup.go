package article

// Deduplicate collapses records sharing a URL. Records without a URL are
// dropped (they cannot be deduplicated). When two records collide, the
// later one in input order wins, so callers order their input to control
// which source's metadata survives. Output order is first-seen key order;
// the ranking step re-imposes the order that matters downstream.
func Deduplicate(records []Article) []Article {
	index := make(map[string]int, len(records))
	out := make([]Article, 0, len(records))

	for _, r := range records {
		if r.URL == "" {
			continue
		}
		if i, ok := index[r.URL]; ok {
			out[i] = r
			continue
		}
		index[r.URL] = len(out)
		out = append(out, r)
	}

	return out
}
