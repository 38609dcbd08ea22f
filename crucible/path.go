package crucible

// path walks the back-pointers of s and returns the route start → s.
// The first step is the start cell with its seeded heading.
func (s *State) path() []Step {
	n := 0
	for cur := s; cur != nil; cur = cur.prev {
		n++
	}
	steps := make([]Step, n)
	for cur, i := s, n-1; cur != nil; cur, i = cur.prev, i-1 {
		steps[i] = Step{Pos: cur.Pos, Heading: cur.Heading}
	}

	return steps
}

// Moves returns the headings of every move along a path, skipping the
// start cell (which is not entered).
func Moves(path []Step) []Heading {
	if len(path) < 2 {
		return nil
	}
	moves := make([]Heading, 0, len(path)-1)
	for _, st := range path[1:] {
		moves = append(moves, st.Heading)
	}

	return moves
}

// Runs returns the lengths of the maximal straight runs in moves.
func Runs(moves []Heading) []int {
	var runs []int
	for i, h := range moves {
		if i == 0 || h != moves[i-1] {
			runs = append(runs, 0)
		}
		runs[len(runs)-1]++
	}

	return runs
}
