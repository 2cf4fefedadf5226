package tournament

import (
	"fmt"

	"github.com/javhar/condorank/digraph"
)

// scoreRow keeps one side's opponents in first-seen order next to the score
// map, so every iteration over a Tournament is deterministic.
type scoreRow[Side comparable] struct {
	opponents []Side
	scores    map[Side]DuelScore
}

func newScoreRow[Side comparable]() *scoreRow[Side] {
	return &scoreRow[Side]{scores: make(map[Side]DuelScore)}
}

func (r *scoreRow[Side]) add(opponent Side, score DuelScore) {
	if existing, ok := r.scores[opponent]; ok {
		r.scores[opponent] = existing.Add(score)
		return
	}
	r.opponents = append(r.opponents, opponent)
	r.scores[opponent] = score
}

// Tournament is an immutable two-level map of DuelScores: side → opponent →
// score. Not every pair needs to be present; ScoreOrZero returns a 0-0 score
// for absent pairs. Construct through Builder for the normalised form in
// which every head-to-head is stored from both perspectives, or through
// FromDuels to mirror an external score table verbatim.
type Tournament[Side comparable] struct {
	sides []Side
	rows  map[Side]*scoreRow[Side]
}

// FromDuels assembles a Tournament holding exactly the listed duels, without
// normalisation: a (lhs, rhs) score is not mirrored to (rhs, lhs). Repeated
// pairs accumulate.
func FromDuels[Side comparable](duels []Duel[Side]) *Tournament[Side] {
	t := &Tournament[Side]{rows: make(map[Side]*scoreRow[Side])}
	for _, duel := range duels {
		row, ok := t.rows[duel.LHS]
		if !ok {
			row = newScoreRow[Side]()
			t.rows[duel.LHS] = row
		}
		row.add(duel.RHS, duel.Score)
	}
	t.sides = sidesUnion(t.rows, duels)
	return t
}

// sidesUnion lists the union of outer and inner keys in first-seen duel
// order.
func sidesUnion[Side comparable](rows map[Side]*scoreRow[Side], duels []Duel[Side]) []Side {
	seen := make(map[Side]struct{}, len(rows))
	var sides []Side
	note := func(side Side) {
		if _, ok := seen[side]; !ok {
			seen[side] = struct{}{}
			sides = append(sides, side)
		}
	}
	for _, duel := range duels {
		note(duel.LHS)
		note(duel.RHS)
	}
	return sides
}

// Sides returns all sides, outer and inner keys combined, in first-seen
// order.
func (t *Tournament[Side]) Sides() []Side { return append([]Side(nil), t.sides...) }

// NumSides returns the number of sides.
func (t *Tournament[Side]) NumSides() int { return len(t.sides) }

// ScoreOrZero returns the stored score of (lhs, rhs), or 0-0 when the pair
// is absent.
func (t *Tournament[Side]) ScoreOrZero(lhs, rhs Side) DuelScore {
	if row, ok := t.rows[lhs]; ok {
		if score, ok := row.scores[rhs]; ok {
			return score
		}
	}
	return DuelScore{}
}

// Duels returns every stored (lhs, rhs, score) triple. In the normalised
// form produced by Builder, each head-to-head appears twice: once from the
// perspective of each side.
func (t *Tournament[Side]) Duels() []Duel[Side] {
	var duels []Duel[Side]
	for _, lhs := range t.sides {
		row, ok := t.rows[lhs]
		if !ok {
			continue
		}
		for _, rhs := range row.opponents {
			duels = append(duels, Duel[Side]{LHS: lhs, RHS: rhs, Score: row.scores[rhs]})
		}
	}
	return duels
}

// MatchResults returns side's head-to-head record against all other sides:
// a win per opponent beaten on strict majority, a loss per opponent lost to,
// ties contributing nothing.
func (t *Tournament[Side]) MatchResults(side Side) DuelScore {
	var wins, losses int
	for _, opponent := range t.sides {
		score := t.ScoreOrZero(side, opponent)
		switch {
		case score.LHS > score.RHS:
			wins++
		case score.LHS < score.RHS:
			losses++
		}
	}
	return DuelScore{LHS: wins, RHS: losses}
}

// TotalScore returns the component-wise sum of side's scores against all
// opponents.
func (t *Tournament[Side]) TotalScore(side Side) DuelScore {
	total := DuelScore{}
	for _, opponent := range t.sides {
		total = total.Add(t.ScoreOrZero(side, opponent))
	}
	return total
}

// Select returns the tournament restricted to the given sides, retaining
// their head-to-head scores exactly. Unknown sides are ignored.
func (t *Tournament[Side]) Select(sides []Side) *Tournament[Side] {
	keep := make(map[Side]struct{}, len(sides))
	for _, side := range sides {
		keep[side] = struct{}{}
	}
	return t.restrict(keep)
}

// Drop returns the tournament with the given sides removed, retaining the
// head-to-head scores of the remaining sides.
func (t *Tournament[Side]) Drop(sides []Side) *Tournament[Side] {
	drop := make(map[Side]struct{}, len(sides))
	for _, side := range sides {
		drop[side] = struct{}{}
	}
	keep := make(map[Side]struct{}, len(t.sides))
	for _, side := range t.sides {
		if _, gone := drop[side]; !gone {
			keep[side] = struct{}{}
		}
	}
	return t.restrict(keep)
}

func (t *Tournament[Side]) restrict(keep map[Side]struct{}) *Tournament[Side] {
	restricted := &Tournament[Side]{rows: make(map[Side]*scoreRow[Side])}
	for _, side := range t.sides {
		if _, ok := keep[side]; ok {
			restricted.sides = append(restricted.sides, side)
		}
	}
	for _, lhs := range restricted.sides {
		row, ok := t.rows[lhs]
		if !ok {
			continue
		}
		newRow := newScoreRow[Side]()
		for _, rhs := range row.opponents {
			if _, ok := keep[rhs]; ok {
				newRow.add(rhs, row.scores[rhs])
			}
		}
		restricted.rows[lhs] = newRow
	}
	return restricted
}

// H2HDigraph returns the head-to-head win digraph: an edge u → v iff u's
// stored score against v is a strict win. Sides without any decided duel do
// not appear.
func (t *Tournament[Side]) H2HDigraph() *digraph.DiGraph[Side] {
	builder := digraph.NewBuilder[Side]()
	for _, duel := range t.Duels() {
		if duel.Score.LHS > duel.Score.RHS {
			builder.AddEdge(duel.LHS, duel.RHS)
		}
	}
	return builder.Build()
}

func (t *Tournament[Side]) String() string {
	return fmt.Sprintf("Tournament(%d sides, %d duels)", len(t.sides), len(t.Duels()))
}

// Builder accumulates duels into the normalised Tournament form: every
// head-to-head is recorded from both perspectives and repeated records
// accumulate.
type Builder[Side comparable] struct {
	order []Side
	rows  map[Side]*scoreRow[Side]
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder[Side comparable]() *Builder[Side] {
	return &Builder[Side]{rows: make(map[Side]*scoreRow[Side])}
}

// AddDuel records score for lhs against rhs and the mirrored score for rhs
// against lhs, accumulating onto earlier records. A negative component is
// remembered and surfaces as ErrNegativeScore from Build. Returns the
// builder for chaining.
func (b *Builder[Side]) AddDuel(lhs, rhs Side, score DuelScore) *Builder[Side] {
	if score.LHS < 0 || score.RHS < 0 {
		if b.err == nil {
			b.err = fmt.Errorf("AddDuel: %v vs %v score %s: %w", lhs, rhs, score, ErrNegativeScore)
		}
		return b
	}
	b.addScore(lhs, rhs, score)
	b.addScore(rhs, lhs, score.Mirror())
	return b
}

// AddWin records a single win of lhs over rhs. Returns the builder for
// chaining.
func (b *Builder[Side]) AddWin(lhs, rhs Side) *Builder[Side] {
	return b.AddDuel(lhs, rhs, DuelScore{LHS: 1, RHS: 0})
}

// AddPath records one full ranking: a single win of each earlier element of
// path over each later one. Returns the builder for chaining.
func (b *Builder[Side]) AddPath(path []Side) *Builder[Side] {
	for idx, rhs := range path {
		for _, lhs := range path[:idx] {
			b.AddWin(lhs, rhs)
		}
	}
	return b
}

// AddPaths records a collection of ranking paths. Returns the builder for
// chaining.
func (b *Builder[Side]) AddPaths(paths [][]Side) *Builder[Side] {
	for _, path := range paths {
		b.AddPath(path)
	}
	return b
}

func (b *Builder[Side]) addScore(lhs, rhs Side, score DuelScore) {
	row, ok := b.rows[lhs]
	if !ok {
		row = newScoreRow[Side]()
		b.rows[lhs] = row
		b.order = append(b.order, lhs)
	}
	row.add(rhs, score)
}

// Build produces the immutable Tournament, or ErrNegativeScore when any
// added score had a negative component. The builder may keep accumulating;
// later builds see the additional duels.
func (b *Builder[Side]) Build() (*Tournament[Side], error) {
	if b.err != nil {
		return nil, b.err
	}
	t := &Tournament[Side]{
		sides: append([]Side(nil), b.order...),
		rows:  make(map[Side]*scoreRow[Side], len(b.rows)),
	}
	for side, row := range b.rows {
		copied := newScoreRow[Side]()
		for _, opponent := range row.opponents {
			copied.add(opponent, row.scores[opponent])
		}
		t.rows[side] = copied
	}
	return t, nil
}
