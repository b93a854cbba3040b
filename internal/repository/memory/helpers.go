package memory

import (
	"sort"
	"time"
)

type sortKey struct {
	at time.Time
	id string
}

// sortByKey orders records earliest first by each repository's listing key
// (creation time, or appointment time), falling back to id for records
// sharing an instant. Map iteration order would otherwise leak into API
// responses.
func sortByKey[T any](items []T, key func(T) sortKey) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.id < b.id
	})
}

func touch(t *time.Time) {
	*t = time.Now()
}
