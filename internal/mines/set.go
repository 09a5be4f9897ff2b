package mines

// PointSet is an unordered set of points. The zero value is an empty,
// read-only set.
type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Len() int {
	return len(s)
}
