package domain

import (
	"sort"
)

// Pair is a directed sender relation.
type Pair struct {
	From string
	To   string
}

// Edges accumulates counts per directed pair.
type Edges map[Pair]int

// Merge adds other into e.
func (e Edges) Merge(other Edges) {
	for p, n := range other {
		e[p] += n
	}
}

// Matrix is a read-only square table over sorted labels.
// Rows are the From side, columns the To side.
type Matrix struct {
	Labels []string    `json:"labels" yaml:"labels"`
	Values [][]float64 `json:"values" yaml:"values"`
}

// NewMatrix lays out edges over labels. Labels are sorted; edges whose
// endpoints are not in labels are ignored.
func NewMatrix(labels []string, edges Edges) Matrix {
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)
	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		index[l] = i
	}
	values := make([][]float64, len(sorted))
	for i := range values {
		values[i] = make([]float64, len(sorted))
	}
	for p, n := range edges {
		i, ok := index[p.From]
		if !ok {
			continue
		}
		j, ok := index[p.To]
		if !ok {
			continue
		}
		values[i][j] += float64(n)
	}
	return Matrix{Labels: sorted, Values: values}
}

// At returns the value for (from, to), zero when either label is unknown.
func (m Matrix) At(from, to string) float64 {
	i := m.indexOf(from)
	j := m.indexOf(to)
	if i < 0 || j < 0 {
		return 0
	}
	return m.Values[i][j]
}

// Row returns a copy of the row for label, nil when unknown.
func (m Matrix) Row(label string) []float64 {
	i := m.indexOf(label)
	if i < 0 {
		return nil
	}
	return append([]float64(nil), m.Values[i]...)
}

// RowPercentages divides every row by its sum and scales to 0..100.
// A row summing to zero stays all zeros.
func (m Matrix) RowPercentages() Matrix {
	values := make([][]float64, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]float64, len(row))
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j, v := range row {
			values[i][j] = v / sum * 100
		}
	}
	return Matrix{Labels: append([]string(nil), m.Labels...), Values: values}
}

// Total sums every cell.
func (m Matrix) Total() float64 {
	var total float64
	for _, row := range m.Values {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func (m Matrix) indexOf(label string) int {
	i := sort.SearchStrings(m.Labels, label)
	if i < len(m.Labels) && m.Labels[i] == label {
		return i
	}
	return -1
}
