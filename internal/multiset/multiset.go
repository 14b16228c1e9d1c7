// internal/multiset/multiset.go
package multiset

// Entry pairs a record value with the multiplicity by which it exceeds the
// other collection. It is the atomic unit of reported disagreement.
type Entry[T comparable] struct {
	Value T
	Count int
}

// Counts builds a frequency table keyed by the full record value.
func Counts[T comparable](list []T) map[T]int {
	m := make(map[T]int, len(list))
	for _, v := range list {
		m[v]++
	}
	return m
}

// Diff computes the duplicate-aware differences aOnly = a − b and
// bOnly = b − a. A value occurring equally often in both collections
// contributes to neither side. Entry order is unspecified; callers sort.
func Diff[T comparable](a, b []T) (aOnly, bOnly []Entry[T]) {
	ca, cb := Counts(a), Counts(b)
	aOnly = subtract(ca, cb)
	bOnly = subtract(cb, ca)
	return aOnly, bOnly
}

// Intersect returns the common multiset: min(countA, countB) per value.
func Intersect[T comparable](a, b []T) []Entry[T] {
	ca, cb := Counts(a), Counts(b)
	var out []Entry[T]
	for v, n := range ca {
		if m := cb[v]; m > 0 {
			if m < n {
				n = m
			}
			out = append(out, Entry[T]{Value: v, Count: n})
		}
	}
	return out
}

// Expand flattens entries into a slice repeating each value Count times,
// preserving entry order.
func Expand[T comparable](entries []Entry[T]) []T {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	out := make([]T, 0, total)
	for _, e := range entries {
		for i := 0; i < e.Count; i++ {
			out = append(out, e.Value)
		}
	}
	return out
}

// Unique collapses duplicates, keeping first-occurrence order. Useful when
// the comparison should be set-valued: trace logs may emit the same raw
// candidate many times without that meaning anything.
func Unique[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	out := make([]T, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func subtract[T comparable](lhs, rhs map[T]int) []Entry[T] {
	var out []Entry[T]
	for v, n := range lhs {
		if rem := n - rhs[v]; rem > 0 {
			out = append(out, Entry[T]{Value: v, Count: rem})
		}
	}
	return out
}
