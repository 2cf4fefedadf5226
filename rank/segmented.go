package rank

// SegmentedRanking is a ranking of items broken into ordered segments. Each
// segment carries one or more permissible orderings of just that segment's
// items; the full rankings of all items are the ordered concatenations, one
// choice per segment, so their count is the product of the segment
// multiplicities.
//
// Example: segments ({a}, {(b,c,d), (c,d,b)}, {e}) admit the full rankings
// (a,b,c,d,e) and (a,c,d,b,e).
type SegmentedRanking[T comparable] struct {
	segments [][]Ranking[T]
}

// Segments returns the ordered segments, each a set of rankings over the
// same item subset.
func (s SegmentedRanking[T]) Segments() [][]Ranking[T] {
	segments := make([][]Ranking[T], len(s.segments))
	for i, segment := range s.segments {
		segments[i] = append([]Ranking[T](nil), segment...)
	}
	return segments
}

// NumSegments returns the number of segments.
func (s SegmentedRanking[T]) NumSegments() int { return len(s.segments) }

// Multiplicities returns the number of rankings per segment. The total
// number of full rankings is the product of these.
func (s SegmentedRanking[T]) Multiplicities() []int {
	mult := make([]int, len(s.segments))
	for i, segment := range s.segments {
		mult[i] = len(segment)
	}
	return mult
}

// NumRankings returns the number of full rankings admitted, the product of
// the multiplicities.
func (s SegmentedRanking[T]) NumRankings() int {
	product := 1
	for _, segment := range s.segments {
		product *= len(segment)
	}
	return product
}

// Arbitrary returns one full ranking, concatenating the first ranking of
// each segment.
func (s SegmentedRanking[T]) Arbitrary() Ranking[T] {
	var items []T
	for _, segment := range s.segments {
		items = append(items, segment[0].items...)
	}
	return NewRanking(items)
}

// SegmentedRankingBuilder accumulates segments for a SegmentedRanking. Most
// segments contain a single item; add those with AddItem.
type SegmentedRankingBuilder[T comparable] struct {
	segments [][]Ranking[T]
}

// NewSegmentedRankingBuilder returns an empty builder.
func NewSegmentedRankingBuilder[T comparable]() *SegmentedRankingBuilder[T] {
	return &SegmentedRankingBuilder[T]{}
}

// AddItem appends a one-item segment and returns the builder for chaining.
func (b *SegmentedRankingBuilder[T]) AddItem(item T) *SegmentedRankingBuilder[T] {
	return b.AddSegment([]Ranking[T]{NewRanking([]T{item})})
}

// AddSegment appends a segment holding the given permissible orderings and
// returns the builder for chaining.
func (b *SegmentedRankingBuilder[T]) AddSegment(rankings []Ranking[T]) *SegmentedRankingBuilder[T] {
	b.segments = append(b.segments, append([]Ranking[T](nil), rankings...))
	return b
}

// Build produces the immutable SegmentedRanking.
func (b *SegmentedRankingBuilder[T]) Build() SegmentedRanking[T] {
	segments := make([][]Ranking[T], len(b.segments))
	for i, segment := range b.segments {
		segments[i] = append([]Ranking[T](nil), segment...)
	}
	return SegmentedRanking[T]{segments: segments}
}
