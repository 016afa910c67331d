package services

import "mileage-service/internal/domain"

// An unordered pair of location IDs, A before B in input order.
type Pair struct {
	A, B string
}

func (p Pair) Key() string { return PairKey(p.A, p.B) }

// PairKey joins two location IDs into a cache and table key.
func PairKey(a, b string) string { return a + domain.PairSeparator + b }

// EnumeratePairs returns every (ids[i], ids[j]) with i < j, ordered by i then j.
func EnumeratePairs(ids []string) []Pair {
	if len(ids) < 2 {
		return nil
	}

	pairs := make([]Pair, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, Pair{A: ids[i], B: ids[j]})
		}
	}

	return pairs
}
