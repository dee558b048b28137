package navigation

import "slices"

// Neighbour offsets: 4 cardinal (N, E, S, W) then 4 diagonal (NW, NE, SE, SW)
// Order matters: it decides which of several equal-cost cells enters the open list first
var neighbourOffsets = [8]Cell{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// stepCost is uniform for cardinal and diagonal moves
// Diagonals are deliberately not weighted by √2; Chebyshev stays an exact lower bound
const stepCost = 1

// searchState is the per-call A* bookkeeping, discarded when FindPath returns
type searchState struct {
	open     []Cell
	inOpen   map[Cell]bool
	closed   map[Cell]bool
	gScore   map[Cell]int
	fScore   map[Cell]int
	cameFrom map[Cell]Cell
}

func newSearchState(capacity int) *searchState {
	return &searchState{
		open:     make([]Cell, 0, capacity),
		inOpen:   make(map[Cell]bool, capacity),
		closed:   make(map[Cell]bool, capacity),
		gScore:   make(map[Cell]int, capacity),
		fScore:   make(map[Cell]int, capacity),
		cameFrom: make(map[Cell]Cell, capacity),
	}
}

// lowest returns the index of the first open cell with strictly minimal f
func (s *searchState) lowest() int {
	best := 0
	bestF := s.fScore[s.open[0]]
	for i := 1; i < len(s.open); i++ {
		if f := s.fScore[s.open[i]]; f < bestF {
			best = i
			bestF = f
		}
	}
	return best
}

// FindPath runs A* from start to end over grid with 8-connectivity
// Returns the cell sequence start..end inclusive, or ok=false if the open list empties first
// Cells outside the grid are never generated as neighbours, so an out-of-bounds end is unreachable
func FindPath(start, end Cell, grid *OccupancyGrid) (path []Cell, ok bool) {
	s := newSearchState(grid.Width + grid.Height)

	s.open = append(s.open, start)
	s.inOpen[start] = true
	s.gScore[start] = 0
	s.fScore[start] = Chebyshev(start, end)

	for len(s.open) > 0 {
		idx := s.lowest()
		current := s.open[idx]

		if current == end {
			return reconstructPath(s.cameFrom, current), true
		}

		s.open = slices.Delete(s.open, idx, idx+1)
		delete(s.inOpen, current)
		s.closed[current] = true

		for _, off := range neighbourOffsets {
			n := Cell{X: current.X + off.X, Y: current.Y + off.Y}
			if !grid.InBounds(n) {
				continue
			}
			if s.closed[n] || grid.Blocked(n) {
				continue
			}

			tentative := s.gScore[current] + stepCost

			if !s.inOpen[n] {
				s.open = append(s.open, n)
				s.inOpen[n] = true
			} else if tentative >= s.gScore[n] {
				continue
			}

			s.cameFrom[n] = current
			s.gScore[n] = tentative
			s.fScore[n] = tentative + Chebyshev(n, end)
		}
	}

	return nil, false
}

// reconstructPath walks predecessor links back from the goal and reverses them
func reconstructPath(cameFrom map[Cell]Cell, current Cell) []Cell {
	path := []Cell{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)
	return path
}

// PathCost returns the number of steps in a path (cells minus one)
func PathCost(path []Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
