package domain

import "sort"

// MileageTable maps pair keys ("A|B") to driving miles. Both orderings of a
// pair are always present with the same value.
type MileageTable struct {
	miles map[string]float64
}

func NewMileageTable() *MileageTable {
	return &MileageTable{miles: make(map[string]float64)}
}

// Set records miles for a and b under both key orderings.
func (t *MileageTable) Set(a, b string, miles float64) {
	t.miles[a+PairSeparator+b] = miles
	t.miles[b+PairSeparator+a] = miles
}

func (t *MileageTable) Get(a, b string) (float64, bool) {
	m, ok := t.miles[a+PairSeparator+b]
	return m, ok
}

func (t *MileageTable) Len() int { return len(t.miles) }

// Keys returns every pair key in sorted order.
func (t *MileageTable) Keys() []string {
	keys := make([]string, 0, len(t.miles))
	for k := range t.miles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Miles returns the value stored under a pair key.
func (t *MileageTable) Miles(key string) float64 { return t.miles[key] }

// Map returns a copy of the table.
func (t *MileageTable) Map() map[string]float64 {
	out := make(map[string]float64, len(t.miles))
	for k, v := range t.miles {
		out[k] = v
	}
	return out
}
