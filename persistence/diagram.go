// diagram.go — persistence diagram types and accessors.

package persistence

import "math"

// Pair is one persistence class: born entering the filtration at Birth,
// dead at Death (math.Inf(1) for essential classes that never die), in
// homology dimension Dim (0 = components, 1 = loops).
type Pair struct {
	Birth float64
	Death float64
	Dim   int
}

// Persistence returns Death − Birth; +Inf for essential classes.
func (p Pair) Persistence() float64 {
	if math.IsInf(p.Death, 1) {
		return math.Inf(1)
	}

	return p.Death - p.Birth
}

// Essential reports whether the class never dies within the filtration.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 1) }

// Diagram is the multiset of persistence pairs of one computation. Order is
// deterministic for a given input (by dimension, then birth, then death)
// but carries no semantics.
type Diagram []Pair

// ByDim returns the sub-diagram of classes in homology dimension dim.
func (d Diagram) ByDim(dim int) Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if p.Dim == dim {
			out = append(out, p)
		}
	}

	return out
}

// MostPersistent returns the longest-lived class in dimension dim.
// Essential classes dominate finite ones; among essentials the earliest
// birth wins. ok is false when the dimension holds no classes.
func (d Diagram) MostPersistent(dim int) (best Pair, ok bool) {
	for _, p := range d {
		if p.Dim != dim {
			continue
		}
		if !ok {
			best, ok = p, true

			continue
		}
		switch {
		case p.Essential() && !best.Essential():
			best = p
		case p.Essential() && best.Essential() && p.Birth < best.Birth:
			best = p
		case !p.Essential() && !best.Essential() && p.Persistence() > best.Persistence():
			best = p
		}
	}

	return best, ok
}
