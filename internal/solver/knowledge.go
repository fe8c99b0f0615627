package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Knowledge is the agent's model of the board: the sentences still
// believed true plus the cells already proven safe or proven mines.
// The two proven sets only ever grow and stay disjoint.
type Knowledge struct {
	sentences []*Sentence
	safes     map[Cell]struct{}
	mines     map[Cell]struct{}
}

func NewKnowledge() *Knowledge {
	return &Knowledge{
		safes: make(map[Cell]struct{}),
		mines: make(map[Cell]struct{}),
	}
}

func (k *Knowledge) Safe(c Cell) bool {
	_, ok := k.safes[c]
	return ok
}

func (k *Knowledge) Mine(c Cell) bool {
	_, ok := k.mines[c]
	return ok
}

// Safes returns a copy of the proven-safe set.
func (k *Knowledge) Safes() map[Cell]struct{} {
	safes := make(map[Cell]struct{}, len(k.safes))
	for c := range k.safes {
		safes[c] = struct{}{}
	}
	return safes
}

// Mines returns a copy of the proven-mine set.
func (k *Knowledge) Mines() map[Cell]struct{} {
	mines := make(map[Cell]struct{}, len(k.mines))
	for c := range k.mines {
		mines[c] = struct{}{}
	}
	return mines
}

// Sentences returns copies of the live sentences.
func (k *Knowledge) Sentences() []*Sentence {
	sentences := make([]*Sentence, len(k.sentences))
	for i, s := range k.sentences {
		sentences[i] = s.Copy()
	}
	return sentences
}

// MarkSafe records that c is proven safe and scrubs it from every
// live sentence. Marking an already-safe cell is a no-op; marking a
// proven mine safe means the engine itself is broken and panics.
func (k *Knowledge) MarkSafe(c Cell) {
	if _, ok := k.mines[c]; ok {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked safe but already proven to be a mine", c,
		)})
	}
	if _, ok := k.safes[c]; ok {
		return
	}
	Log.Debugf("proven safe: %s", c)
	k.safes[c] = struct{}{}
	for _, s := range k.sentences {
		s.MarkSafe(c)
	}
}

// MarkMine records that c is a proven mine and scrubs it from every
// live sentence, decrementing their counts.
func (k *Knowledge) MarkMine(c Cell) {
	if _, ok := k.safes[c]; ok {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked mine but already proven safe", c,
		)})
	}
	if _, ok := k.mines[c]; ok {
		return
	}
	Log.Debugf("proven mine: %s", c)
	k.mines[c] = struct{}{}
	for _, s := range k.sentences {
		s.MarkMine(c)
	}
}

// Add appends a sentence unless it is vacuous or already present.
func (k *Knowledge) Add(s *Sentence) {
	if s.Len() == 0 || k.contains(s) {
		return
	}
	k.sentences = append(k.sentences, s)
}

func (k *Knowledge) contains(s *Sentence) bool {
	for _, have := range k.sentences {
		if have.Equal(s) {
			return true
		}
	}
	return false
}

func (k *Knowledge) discardEmpty() {
	live := k.sentences[:0]
	for _, s := range k.sentences {
		if s.Len() > 0 {
			live = append(live, s)
		}
	}
	k.sentences = live
}

// Propagate derives everything the two inference rules can reach:
// trivial resolution (count == 0 or count == |cells|) and subset
// subtraction. Rounds repeat until a full round changes nothing.
// Each round either resolves a cell or adds a previously-absent
// sentence, both drawn from finite universes, so the loop terminates.
func (k *Knowledge) Propagate() error {
	for round := 1; ; round++ {
		resolved, err := k.resolve()
		if err != nil {
			return err
		}
		derived, err := k.infer()
		if err != nil {
			return err
		}
		if !resolved && !derived {
			Log.Debugf("fixed point after %d round(s), %d live sentence(s)",
				round, len(k.sentences))
			return nil
		}
	}
}

// resolve runs trivial resolution until it stalls. Returns whether
// any cell was classified. Iteration walks a snapshot of the live
// slice; the sentences themselves are read live so that a cell
// resolved earlier in the pass is never classified twice.
func (k *Knowledge) resolve() (changed bool, err error) {
	k.discardEmpty()
	for progress := true; progress; {
		progress = false
		live := make([]*Sentence, len(k.sentences))
		copy(live, k.sentences)
		for _, s := range live {
			if s.Len() == 0 {
				continue
			}
			if s.count < 0 || s.count > s.Len() {
				return changed, fmt.Errorf(
					"sentence %s is unsatisfiable: %w", s, ErrContradiction,
				)
			}
			switch {
			case s.count == s.Len():
				for _, c := range s.Cells() {
					k.MarkMine(c)
				}
			case s.count == 0:
				for _, c := range s.Cells() {
					k.MarkSafe(c)
				}
			default:
				continue
			}
			progress = true
			changed = true
		}
		k.discardEmpty()
	}
	return changed, nil
}

// infer runs the subset rule over a snapshot: for sentences B ⊂ A,
// the cells A∖B must hold exactly A.count−B.count mines. Returns
// whether any new sentence was appended.
func (k *Knowledge) infer() (changed bool, err error) {
	snapshot := k.Sentences()
	for _, a := range snapshot {
		for _, b := range snapshot {
			if a == b || a.Len() == 0 || b.Len() == 0 {
				continue
			}
			if !b.subsetOf(a) {
				continue
			}
			if b.Len() == a.Len() {
				// same cell set; equal counts are a duplicate,
				// different counts cannot both be true
				if b.count != a.count {
					return changed, fmt.Errorf(
						"sentences %s and %s disagree: %w",
						a, b, ErrContradiction,
					)
				}
				continue
			}
			derived := a.Copy()
			for _, c := range b.Cells() {
				delete(derived.cells, c)
			}
			derived.count = a.count - b.count
			if derived.count < 0 || derived.count > derived.Len() {
				return changed, fmt.Errorf(
					"subtracting %s from %s yields unsatisfiable %s: %w",
					b, a, derived, ErrContradiction,
				)
			}
			if !k.contains(derived) {
				Log.Debugf("derived %s from %s minus %s", derived, a, b)
				k.sentences = append(k.sentences, derived)
				changed = true
			}
		}
	}
	return changed, nil
}
