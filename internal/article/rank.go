package article

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// SortByRecency returns the records ordered by parsed publish timestamp,
// most recent first. The sort is stable: equal timestamps (including all
// unparseable ones) keep their relative input order. The input slice is
// not modified.
func SortByRecency(records []Article) []Article {
	type keyed struct {
		art  Article
		when time.Time
	}

	// Parse once per record, not once per comparison.
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{art: r, when: parsePublished(r.Published)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].when.After(items[j].when)
	})

	ranked := make([]Article, len(items))
	for i, it := range items {
		ranked[i] = it.art
	}
	return ranked
}

// parsePublished attempts a lenient free-text date parse. Any failure
// yields the zero time so unparseable records sort last instead of
// erroring or being excluded.
func parsePublished(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}
	}
	return t
}
