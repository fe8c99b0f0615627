package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Sentence is a logical statement about the board: among a set of
// cells, exactly count are mines. Sentences only ever talk about
// cells whose status is still unknown; once a cell is resolved it is
// removed from every sentence that mentions it.
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s *Sentence) Len() int {
	return len(s.cells)
}

func (s *Sentence) Count() int {
	return s.count
}

func (s *Sentence) Has(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the sentence's cells in row-major order.
func (s *Sentence) Cells() []Cell {
	cells := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Copy returns an independent value-equal clone. The propagation loop
// iterates over copies while mutating the live sentences.
func (s *Sentence) Copy() *Sentence {
	clone := &Sentence{
		cells: make(map[Cell]struct{}, len(s.cells)),
		count: s.count,
	}
	for c := range s.cells {
		clone.cells[c] = struct{}{}
	}
	return clone
}

// Equal reports value equality: same cell set, same count.
func (s *Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	return s.subsetOf(other)
}

// subsetOf reports whether every cell of s is also in other.
func (s *Sentence) subsetOf(other *Sentence) bool {
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// MarkMine records that c is a mine: if c belongs to the sentence it
// is removed and the count drops by one. No-op otherwise.
func (s *Sentence) MarkMine(c Cell) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	s.count--
}

// MarkSafe records that c is safe: if c belongs to the sentence it is
// removed, the count is unchanged. No-op otherwise.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.cells, c)
}

func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
