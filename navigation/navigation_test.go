package navigation

import (
	"testing"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

func TestToCellRounding(t *testing.T) {
	tests := []struct {
		pos  vmath.Vec2
		want Cell
	}{
		{vmath.V(0, 0), Cell{0, 0}},
		{vmath.V(100, 100), Cell{5, 5}},
		{vmath.V(29.9, 30), Cell{1, 2}},
		{vmath.V(10, 9.99), Cell{1, 0}},
	}
	for _, tt := range tests {
		if got := ToCell(tt.pos); got != tt.want {
			t.Errorf("ToCell(%v): expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

func TestToWorldRoundTrip(t *testing.T) {
	c := Cell{7, 3}
	if got := ToCell(ToWorld(c)); got != c {
		t.Errorf("Expected %v after round trip, got %v", c, got)
	}
	if w := ToWorld(c); !w.Equal(vmath.V(140, 60)) {
		t.Errorf("Expected (140, 60), got %v", w)
	}
}

func TestGridSizeRoundsUp(t *testing.T) {
	cols, rows := GridSize(810, 600)
	if cols != 41 || rows != 30 {
		t.Errorf("Expected 41x30, got %dx%d", cols, rows)
	}
}

func TestFindPathShortestUnobstructed(t *testing.T) {
	grid := NewOccupancyGrid(30, 20)

	pairs := []struct{ start, end Cell }{
		{Cell{0, 0}, Cell{29, 19}},
		{Cell{5, 5}, Cell{5, 15}},
		{Cell{10, 3}, Cell{2, 18}},
		{Cell{4, 4}, Cell{4, 4}},
		{Cell{29, 0}, Cell{0, 1}},
	}

	for _, p := range pairs {
		path, ok := FindPath(p.start, p.end, grid)
		if !ok {
			t.Fatalf("Expected path from %v to %v", p.start, p.end)
		}
		if path[0] != p.start || path[len(path)-1] != p.end {
			t.Errorf("Path endpoints wrong: %v..%v", path[0], path[len(path)-1])
		}
		if got, want := PathCost(path), Chebyshev(p.start, p.end); got != want {
			t.Errorf("Path %v→%v: expected %d steps, got %d", p.start, p.end, want, got)
		}
		assertConnected(t, path, grid)
	}
}

func TestFindPathShortestRandomPairs(t *testing.T) {
	grid := NewOccupancyGrid(25, 25)
	rng := vmath.NewFastRand(99)

	for i := 0; i < 50; i++ {
		start := Cell{rng.Intn(25), rng.Intn(25)}
		end := Cell{rng.Intn(25), rng.Intn(25)}
		path, ok := FindPath(start, end, grid)
		if !ok {
			t.Fatalf("Expected path from %v to %v", start, end)
		}
		if got, want := PathCost(path), Chebyshev(start, end); got != want {
			t.Errorf("Path %v→%v: expected %d steps, got %d", start, end, want, got)
		}
	}
}

func TestFindPathAroundWall(t *testing.T) {
	grid := NewOccupancyGrid(20, 20)
	// Vertical wall at x=10 from y=0..15, opening below
	for y := 0; y <= 15; y++ {
		grid.Block(Cell{10, y})
	}

	path, ok := FindPath(Cell{5, 5}, Cell{15, 5}, grid)
	if !ok {
		t.Fatal("Expected path around the wall")
	}
	assertConnected(t, path, grid)

	if PathCost(path) <= Chebyshev(Cell{5, 5}, Cell{15, 5}) {
		t.Errorf("Detour should be longer than the direct distance, got %d", PathCost(path))
	}
	for _, c := range path {
		if c.X == 10 && c.Y <= 15 {
			t.Errorf("Path crosses wall at %v", c)
		}
	}
}

func TestFindPathEnclosedStart(t *testing.T) {
	grid := NewOccupancyGrid(20, 20)
	start := Cell{10, 10}
	for _, off := range neighbourOffsets {
		grid.Block(Cell{start.X + off.X, start.Y + off.Y})
	}

	path, ok := FindPath(start, Cell{0, 0}, grid)
	if ok || path != nil {
		t.Errorf("Expected not-found, got %v", path)
	}
}

func TestFindPathEndOutOfBounds(t *testing.T) {
	grid := NewOccupancyGrid(10, 10)
	if _, ok := FindPath(Cell{1, 1}, Cell{10, 4}, grid); ok {
		t.Error("Expected out-of-bounds goal to be unreachable")
	}
}

func TestFindPathDeterministic(t *testing.T) {
	// Equal-cost alternatives are resolved by encounter order, so repeated calls agree
	grid := NewOccupancyGrid(15, 15)
	grid.Block(Cell{7, 7})

	first, ok := FindPath(Cell{0, 7}, Cell{14, 7}, grid)
	if !ok {
		t.Fatal("Expected path")
	}
	for i := 0; i < 5; i++ {
		again, _ := FindPath(Cell{0, 7}, Cell{14, 7}, grid)
		if len(again) != len(first) {
			t.Fatalf("Run %d: length %d differs from %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("Run %d: step %d differs: %v vs %v", i, j, again[j], first[j])
			}
		}
	}
	if PathCost(first) != 14 {
		t.Errorf("Expected 14 steps with diagonal sidestep at unit cost, got %d", PathCost(first))
	}
}

func TestBuildObstaclesSkipsExpectedLetter(t *testing.T) {
	letters := []component.Letter{
		{Char: 'К', Pos: vmath.V(200, 200), Kind: component.LetterCorrect},
		{Char: 'Т', Pos: vmath.V(400, 200), Kind: component.LetterCorrect},
	}
	grid := BuildObstacles(letters, 40, 30, 'К', true)

	goal := ToCell(letters[0].Pos)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if grid.Blocked(Cell{goal.X + dx, goal.Y + dy}) {
				t.Errorf("Goal neighbourhood cell (%d,%d) should be free", goal.X+dx, goal.Y+dy)
			}
		}
	}

	other := ToCell(letters[1].Pos)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if !grid.Blocked(Cell{other.X + dx, other.Y + dy}) {
				t.Errorf("Cell (%d,%d) around non-expected letter should be blocked", other.X+dx, other.Y+dy)
			}
		}
	}
	if got := grid.BlockedCount(); got != 25 {
		t.Errorf("Expected 25 blocked cells, got %d", got)
	}
}

func TestBuildObstaclesDistractorWithExpectedRune(t *testing.T) {
	letters := []component.Letter{
		{Char: 'К', Pos: vmath.V(200, 200), Kind: component.LetterDistractor},
	}
	grid := BuildObstacles(letters, 40, 30, 'К', true)
	if !grid.Blocked(ToCell(letters[0].Pos)) {
		t.Error("Distractor should block even when its rune equals the expected one")
	}
}

func TestBuildObstaclesIgnoresCollected(t *testing.T) {
	letters := []component.Letter{
		{Char: 'Т', Pos: vmath.V(200, 200), Kind: component.LetterCorrect, State: component.LetterCollected},
	}
	grid := BuildObstacles(letters, 40, 30, 'К', true)
	if grid.BlockedCount() != 0 {
		t.Errorf("Collected letters should not block, got %d blocked", grid.BlockedCount())
	}
}

func TestBuildObstaclesClipsAtEdge(t *testing.T) {
	letters := []component.Letter{
		{Char: 'Ж', Pos: vmath.V(0, 0), Kind: component.LetterDistractor},
	}
	grid := BuildObstacles(letters, 10, 10, 'К', true)
	if got := grid.BlockedCount(); got != 9 {
		t.Errorf("Expected 3x3 clipped corner, got %d blocked", got)
	}
}

func TestBuildObstaclesWordComplete(t *testing.T) {
	letters := []component.Letter{
		{Char: 'К', Pos: vmath.V(200, 200), Kind: component.LetterCorrect},
	}
	grid := BuildObstacles(letters, 40, 30, 0, false)
	if !grid.Blocked(ToCell(letters[0].Pos)) {
		t.Error("With no expected rune every active letter should block")
	}
}

func assertConnected(t *testing.T, path []Cell, grid *OccupancyGrid) {
	t.Helper()
	for i, c := range path {
		if grid.Blocked(c) {
			t.Errorf("Path step %d at %v is blocked", i, c)
		}
		if i > 0 && Chebyshev(path[i-1], c) != 1 {
			t.Errorf("Path step %d: %v not adjacent to %v", i, c, path[i-1])
		}
	}
}
