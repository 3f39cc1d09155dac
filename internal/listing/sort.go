package listing

import "sort"

// Sort orders entries in place by the given key. The sort is stable: entries
// whose key values compare equal keep their collection order, with or without
// reverse. Reverse flips the comparison direction only; it does not reverse
// ties.
func Sort(entries []Entry, key SortKey, reverse bool) {
	less := lessFunc(key)
	if reverse {
		forward := less
		less = func(a, b Entry) bool { return forward(b, a) }
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

func lessFunc(key SortKey) func(a, b Entry) bool {
	switch key {
	case SortByTime:
		return func(a, b Entry) bool { return a.ModTime.Before(b.ModTime) }
	case SortBySize:
		return func(a, b Entry) bool { return a.Size < b.Size }
	default:
		return func(a, b Entry) bool { return a.Name < b.Name }
	}
}
