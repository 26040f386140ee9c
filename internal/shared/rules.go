package shared

// PieceSupply is the per-player stone allotment for one board size.
// Walls draw from the flatstone allotment.
type PieceSupply struct {
	Flatstones int `json:"flatstones"`
	Capstones  int `json:"capstones"`
}

func (s PieceSupply) ForKind(kind StoneKind) int {
	if kind == Cap {
		return s.Capstones
	}
	return s.Flatstones
}

// supplies maps board size to the standard per-player allotment.
var supplies = map[int]PieceSupply{
	3: {Flatstones: 10, Capstones: 0},
	4: {Flatstones: 15, Capstones: 0},
	5: {Flatstones: 21, Capstones: 1},
	6: {Flatstones: 30, Capstones: 1},
	7: {Flatstones: 40, Capstones: 2},
	8: {Flatstones: 50, Capstones: 2},
}

// Supply looks up the allotment for a board size. The second result is
// false for sizes the rules do not cover.
func Supply(size int) (PieceSupply, bool) {
	s, ok := supplies[size]
	return s, ok
}

// BoardSizes lists the supported board sizes in ascending order.
func BoardSizes() []int {
	return []int{3, 4, 5, 6, 7, 8}
}
